package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "jobtrack-test-pepper")
	SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestGetPepper_ConcurrentFirstUse(t *testing.T) {
	const workers = 16

	peppers := make([]string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			peppers[i] = GetPepper()
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Equal(t, peppers[0], peppers[i],
			"every caller must observe the same pepper")
	}

	// The persisted file matches what every hash used.
	persisted, err := os.ReadFile(filepath.Join(os.TempDir(), "jobtrack-test-pepper"))
	require.NoError(t, err)
	require.Equal(t, peppers[0], string(persisted))
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "secret123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"unicode password", "senhaçã日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"),
				"hash should be in PHC format")
			require.Len(t, strings.Split(hash, "$"), 6)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("samepassword")
	require.NoError(t, err)
	hash2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "same password should produce different hashes")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	t.Run("accepts the correct password", func(t *testing.T) {
		require.NoError(t, VerifyPassword("secret123", hash))
	})

	t.Run("rejects a near miss", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("secret124", hash), ErrPasswordMismatch)
	})

	t.Run("rejects the empty password", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("", hash), ErrPasswordMismatch)
	})

	t.Run("rejects malformed hashes", func(t *testing.T) {
		for _, bad := range []string{
			"",
			"$argon2id$v=19$m=19456,t=2,p=1$short",
			"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
			"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
			"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		} {
			err := VerifyPassword("secret123", bad)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrPasswordMismatch)
		}
	})
}
