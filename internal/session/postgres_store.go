package session

import (
	"context"

	"github.com/spec-kit/exam-portal/internal/repository"
)

// PostgresStore keeps the credential record in the portal_credentials table.
type PostgresStore struct {
	repo repository.CredentialRepository
}

// NewPostgresStore wraps a credential repository.
func NewPostgresStore(repo repository.CredentialRepository) *PostgresStore {
	return &PostgresStore{repo: repo}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.repo.Get(ctx, key)
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	return s.repo.Upsert(ctx, key, value)
}

func (s *PostgresStore) Delete(ctx context.Context, keys ...string) error {
	return s.repo.Delete(ctx, keys...)
}

func (s *PostgresStore) Close() error {
	return nil
}
