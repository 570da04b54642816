package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32
)

// ErrUnsealFailed is returned when a sealed value cannot be opened.
var ErrUnsealFailed = errors.New("unable to unseal value")

// Sealer encrypts credential values at rest with a passphrase-derived key.
// Derived keys are cached per salt; values sealed by one Sealer share a salt.
type Sealer struct {
	passphrase []byte
	salt       []byte

	mu   sync.Mutex
	keys map[string]*[keySize]byte
}

// NewSealer builds a Sealer. An empty passphrase is rejected.
func NewSealer(passphrase string) (*Sealer, error) {
	if passphrase == "" {
		return nil, errors.New("sealer passphrase is required")
	}
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	return &Sealer{
		passphrase: []byte(passphrase),
		salt:       salt,
		keys:       make(map[string]*[keySize]byte),
	}, nil
}

// Seal encrypts plain and returns base64(salt|nonce|box).
func (s *Sealer) Seal(plain string) (string, error) {
	salt := s.salt
	key, err := s.deriveKey(salt)
	if err != nil {
		return "", err
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	out := make([]byte, 0, saltSize+nonceSize+len(plain)+secretbox.Overhead)
	out = append(out, salt...)
	out = append(out, nonce[:]...)
	out = secretbox.Seal(out, []byte(plain), &nonce, key)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Open reverses Seal.
func (s *Sealer) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < saltSize+nonceSize+secretbox.Overhead {
		return "", ErrUnsealFailed
	}
	key, err := s.deriveKey(raw[:saltSize])
	if err != nil {
		return "", err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[saltSize:saltSize+nonceSize])
	plain, ok := secretbox.Open(nil, raw[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return "", ErrUnsealFailed
	}
	return string(plain), nil
}

func (s *Sealer) deriveKey(salt []byte) (*[keySize]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.keys[string(salt)]; ok {
		return key, nil
	}
	derived, err := scrypt.Key(s.passphrase, salt, 1<<15, 8, 1, keySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	var key [keySize]byte
	copy(key[:], derived)
	s.keys[string(salt)] = &key
	return &key, nil
}
