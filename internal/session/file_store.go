package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

const fileStoreVersion = 1

// ValueSealer encrypts values before they reach disk.
type ValueSealer interface {
	Seal(plain string) (string, error)
	Open(sealed string) (string, error)
}

type fileRecord struct {
	Version   int               `json:"version"`
	Values    map[string]string `json:"values"`
	UpdatedAt string            `json:"updatedAt"`
}

// FileStore persists credentials in a single JSON file so they survive
// restarts. The file is loaded once; every write rewrites it atomically.
type FileStore struct {
	path   string
	sealer ValueSealer
	logger *zap.Logger

	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// OpenFileStore loads path if it exists. A missing, unreadable or corrupt
// file yields an empty store: broken credentials mean "logged out".
func OpenFileStore(path string, sealer ValueSealer, logger *zap.Logger) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("session file path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	s := &FileStore{path: path, sealer: sealer, logger: logger, values: make(map[string]string)}
	s.load()
	return s, nil
}

func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("unable to read session file", zap.String("path", s.path), zap.Error(err))
		}
		return
	}

	var record fileRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		s.logger.Warn("session file is corrupt; starting logged out", zap.String("path", s.path), zap.Error(err))
		return
	}
	if record.Version != fileStoreVersion {
		s.logger.Warn("unsupported session file version", zap.Int("version", record.Version))
		return
	}

	for key, value := range record.Values {
		plain := value
		if s.sealer != nil {
			opened, err := s.sealer.Open(value)
			if err != nil {
				s.logger.Warn("dropping unreadable session entry", zap.String("key", key))
				continue
			}
			plain = opened
		}
		s.values[key] = plain
	}
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrStoreClosed
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	removed := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := s.values[k]; ok {
			removed[k] = v
			delete(s.values, k)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	if err := s.flush(); err != nil {
		for k, v := range removed {
			s.values[k] = v
		}
		return err
	}
	return nil
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// flush must be called with mu held.
func (s *FileStore) flush() error {
	record := fileRecord{
		Version:   fileStoreVersion,
		Values:    make(map[string]string, len(s.values)),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for key, value := range s.values {
		stored := value
		if s.sealer != nil {
			sealed, err := s.sealer.Seal(value)
			if err != nil {
				return fmt.Errorf("seal %s: %w", key, err)
			}
			stored = sealed
		}
		record.Values[key] = stored
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}
