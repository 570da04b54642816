package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const secretSize = 32

// LoadOrCreateSecret returns the sealing passphrase stored at path,
// generating a random one on first use. The file is readable by the owner
// only.
func LoadOrCreateSecret(path string) (string, error) {
	if path == "" {
		return "", errors.New("secret path is required")
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if secret := strings.TrimSpace(string(raw)); secret != "" {
			return secret, nil
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read secret: %w", err)
	}

	buf := make([]byte, secretSize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	secret := base64.RawURLEncoding.EncodeToString(buf)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create secret dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(secret+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write secret: %w", err)
	}
	return secret, nil
}
