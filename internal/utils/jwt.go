package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-maintenance-search/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT naming sessionID.
//
// The token carries the standard claims:
//   - Issuer    (iss): the issuing service
//   - Subject   (sub): the session identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if any parameter is empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("maintenance-search", id, 12*time.Hour, "secret")
func GenerateSessionToken(issuer, sessionID string, tokenDuration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || sessionID == "" || tokenDuration <= 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{Token: token, SignedString: signed, SessionID: sessionID}, nil
}

// ValidateAndParseSessionToken verifies the signature, the issuer and the
// expiry of tokenString and returns the session it names.
//
// Only HS256 is accepted.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.SessionToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	sessionID, err := token.Claims.GetSubject()
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during getting subject from session token: %w", err)
	}
	if sessionID == "" {
		return models.SessionToken{}, errors.New("empty subject error")
	}

	return models.SessionToken{Token: token, SignedString: tokenString, SessionID: sessionID}, nil
}
