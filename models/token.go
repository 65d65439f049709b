package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceToken wraps the JWT presented by internal callers of the trigger
// API (login handler, progress tracker, inactivity cron). The subject claim
// names the calling service.
type ServiceToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Caller is the calling service name extracted from the "sub" claim.
	Caller string `json:"-"`
}

// GetCaller extracts the calling service name from the token's "sub" claim.
func (t *ServiceToken) GetCaller() (string, error) {
	caller, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting caller from token: %w", err)
	}

	return caller, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *ServiceToken) String() string {
	return t.SignedString
}
