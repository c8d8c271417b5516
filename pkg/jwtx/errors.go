package jwtx

import "errors"

var (
	// ErrInvalidToken reports a token that failed signature verification or
	// could not be parsed at all.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrExpired reports a token used at or after its expiry.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrNotYetValid reports a token used before its nbf claim.
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	// ErrEmptyKey reports a signer or verifier built without key material.
	ErrEmptyKey = errors.New("jwtx: signing key must not be empty")
)
