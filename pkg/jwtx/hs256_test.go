package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewSignerHS256_RejectsEmptyKey(t *testing.T) {
	_, err := NewSignerHS256(nil)
	require.ErrorIs(t, err, ErrEmptyKey)

	_, err = NewVerifierHS256([]byte{})
	require.ErrorIs(t, err, ErrEmptyKey)
}

func TestHS256_RoundTrip(t *testing.T) {
	signer, err := NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := NewVerifierHS256([]byte(testSecret))
	require.NoError(t, err)

	claims := NewSessionClaims("alice@example.com", time.Hour, time.Now().UTC())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(raw, ".")+1, "compact JWS has three segments")

	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Subject)
	require.NoError(t, got.ValidateExpiry())
}

func TestHS256_Expired(t *testing.T) {
	signer, err := NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := NewVerifierHS256([]byte(testSecret))
	require.NoError(t, err)

	claims := NewSessionClaims("alice@example.com", time.Minute, time.Now().UTC().Add(-time.Hour))
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256_WrongKey(t *testing.T) {
	signer, err := NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := NewVerifierHS256([]byte("another-secret-another-secret-00"))
	require.NoError(t, err)

	raw, err := signer.Sign(NewSessionClaims("alice@example.com", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestHS256_Tampered(t *testing.T) {
	signer, err := NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := NewVerifierHS256([]byte(testSecret))
	require.NoError(t, err)

	raw, err := signer.Sign(NewSessionClaims("alice@example.com", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	t.Run("altered payload", func(t *testing.T) {
		tampered := parts[0] + "." + parts[1][:len(parts[1])-2] + "AA" + "." + parts[2]
		_, err := verifier.Verify(tampered)
		require.Error(t, err)
	})

	t.Run("altered signature", func(t *testing.T) {
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		_, err := verifier.Verify(parts[0] + "." + parts[1] + "." + string(sig))
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHS256_Malformed(t *testing.T) {
	verifier, err := NewVerifierHS256([]byte(testSecret))
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d", "ey.ey.ey"} {
		_, err := verifier.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestValidateExpiry_AtExpiryIsExpired(t *testing.T) {
	claims := NewSessionClaims("alice@example.com", 0, time.Now().UTC().Add(-time.Millisecond))
	require.ErrorIs(t, claims.ValidateExpiry(), ErrExpired)
}
