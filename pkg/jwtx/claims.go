package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session-token claims. The token is a self-contained
// assertion of {subject, issuedAt, expiresAt}; the subject is the
// normalized email of the authenticated user. Keep changes additive.
type Claims struct {
	jwt.RegisteredClaims
}

// NewSessionClaims builds minimally-correct claims for a session token.
func NewSessionClaims(subject string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before nbf. A token evaluated exactly at its expiry instant is expired.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
