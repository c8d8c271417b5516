package jwtx

import (
	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// NewSignerHS256 creates an HS256 signer from a shared secret. The secret
// is loaded once at startup and held for the process lifetime.
func NewSignerHS256(secret []byte) (Signer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptyKey
	}
	return &hs256Signer{secret: secret}, nil
}

type hs256Signer struct {
	secret []byte
}

func (s *hs256Signer) Alg() string { return "HS256" }

func (s *hs256Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
