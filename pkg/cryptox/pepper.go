package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Argon2id parameters, following the OWASP minimum recommendation.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the derived key
	saltLength  = 16        // Length of the salt
)

var (
	// Pepper is loaded from a file, or generated on first use. The Once
	// guard keeps concurrent first callers from generating divergent
	// peppers and persisting only one of them.
	pepperOnce sync.Once
	pepper     string
	pepperFile string
)

// SetPepperPath must be called before the first hash or verify; once the
// pepper is loaded the path is fixed for the process lifetime.
func SetPepperPath(file string) {
	pepperFile = file
}

func GetPepper() string {
	pepperOnce.Do(func() {
		loaded, err := loadOrGeneratePepper()
		if err != nil {
			slog.Error("failed to load or generate pepper", slog.Any("err", err))
			os.Exit(1)
		}
		pepper = loaded
	})

	return pepper
}

// loadOrGeneratePepper loads the pepper from a file or generates one if not found.
func loadOrGeneratePepper() (string, error) {
	pepperFile = filepath.Clean(pepperFile)
	if err := os.MkdirAll(filepath.Dir(pepperFile), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(pepperFile); os.IsNotExist(err) {
		buf := make([]byte, keyLength)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		generated := base64.RawURLEncoding.EncodeToString(buf)

		if err := os.WriteFile(pepperFile, []byte(generated), 0600); err != nil {
			return "", err
		}
		return generated, nil
	}

	loaded, err := os.ReadFile(pepperFile)
	if err != nil {
		return "", err
	}

	return string(loaded), nil
}
