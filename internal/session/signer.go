package session

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-maintenance-search/internal/config"
	"github.com/MKhiriev/go-maintenance-search/internal/utils"
	"github.com/MKhiriev/go-maintenance-search/models"
)

// CookieName is the name of the session cookie.
const CookieName = "maintenance_search_session"

// Signer issues session identifiers wrapped in signed tokens and verifies
// them on the way back.
type Signer struct {
	ids      *utils.UUIDGenerator
	signKey  string
	issuer   string
	duration time.Duration
}

// NewSigner builds a Signer from the application config.
func NewSigner(appCfg config.App) *Signer {
	return &Signer{
		ids:      utils.NewUUIDGenerator(),
		signKey:  appCfg.SessionSignKey,
		issuer:   appCfg.SessionIssuer,
		duration: appCfg.SessionDuration,
	}
}

// Issue starts a new session and returns its signed token.
func (s *Signer) Issue() (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(s.issuer, s.ids.Generate(), s.duration, s.signKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

// Verify returns the session named by a signed token. Any failure is
// reported as [ErrInvalidSession].
func (s *Signer) Verify(signed string) (string, error) {
	token, err := utils.ValidateAndParseSessionToken(signed, s.signKey, s.issuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if !utils.IsValid(token.SessionID) {
		return "", fmt.Errorf("%w: malformed session id", ErrInvalidSession)
	}
	return token.SessionID, nil
}

// Duration is the lifetime of an issued token.
func (s *Signer) Duration() time.Duration {
	return s.duration
}
