package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks a compact token's signature and returns its claims.
// Expiry is validated during parsing; callers that need the exact
// at-expiry boundary should also call Claims.ValidateExpiry.
type Verifier interface {
	Alg() string
	Verify(raw string) (Claims, error)
}

// NewVerifierHS256 creates an HS256 verifier from a shared secret.
func NewVerifierHS256(secret []byte) (Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrEmptyKey
	}
	return &hs256Verifier{secret: secret}, nil
}

type hs256Verifier struct {
	secret []byte
}

func (v *hs256Verifier) Alg() string { return "HS256" }

func (v *hs256Verifier) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
