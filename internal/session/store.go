// Package session owns the persisted credential record: the admin token,
// the student token and the active-role tag, plus the cached profiles.
//
// A Store persists raw key/value pairs; the Manager is the only writer and
// hands out immutable snapshots to readers such as the navigation gate and
// the request authorizer.
package session

import (
	"context"
	"errors"
)

// ErrStoreClosed is returned by stores used after Close.
var ErrStoreClosed = errors.New("credential store closed")

// Store is a persisted key/value store for credential entries.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
