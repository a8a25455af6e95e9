package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is a signed browser session cookie value.
//
// It embeds [jwt.Token] for claim inspection. SignedString holds the compact
// header.payload.signature form stored in the cookie and SessionID caches
// the "sub" claim, which names the session in the session store.
type SessionToken struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`
	SessionID    string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t SessionToken) String() string {
	return t.SignedString
}
