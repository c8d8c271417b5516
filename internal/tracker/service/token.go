package service

import (
	"errors"
	"time"

	"github.com/jobtrack/jobtrack/pkg/jwtx"
)

// ErrTokenInvalid is the single negative outcome of token verification:
// bad signature, malformed payload, or expiry. Callers never learn which.
var ErrTokenInvalid = errors.New("token invalid")

// TokenService signs and verifies the compact, self-contained session
// tokens used to authenticate every request. Tokens carry only
// {subject, iat, exp}; there is no server-side session store, so a token
// cannot be revoked before its natural expiry.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	TTL      time.Duration
}

// Issue produces a signed token asserting subject for the configured TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	claims := jwtx.NewSessionClaims(subject, s.TTL, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Verify validates the signature and freshness of raw and returns the
// subject. Every failure mode collapses into ErrTokenInvalid.
func (s *TokenService) Verify(raw string) (string, error) {
	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		return "", ErrTokenInvalid
	}

	// Parsing already rejects expired tokens, but the boundary case of a
	// token presented exactly at its expiry instant is settled here.
	if err := claims.ValidateExpiry(); err != nil {
		return "", ErrTokenInvalid
	}

	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}

// TTLSeconds exposes the configured token lifetime in whole seconds so the
// transport layer can align cookie expiry with token expiry. Never less
// than one second.
func (s *TokenService) TTLSeconds() int {
	secs := int(s.TTL / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
