package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/exam-portal/internal/domain"
	"github.com/spec-kit/exam-portal/internal/events"
)

// ErrEmptyToken is returned when a login supplies no token.
var ErrEmptyToken = errors.New("token is required")

// Manager is the single writer of the credential record. Readers take
// snapshots; writers are serialized.
type Manager struct {
	store      Store
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu sync.RWMutex
}

// NewManager builds a manager over store. dispatcher may be nil.
func NewManager(store Store, dispatcher events.Dispatcher, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, dispatcher: dispatcher, logger: logger}
}

// Snapshot reads the current credential record. Read failures are logged
// and the affected entries are treated as absent.
func (m *Manager) Snapshot(ctx context.Context) domain.CredentialRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return domain.CredentialRecord{
		AdminToken:   strings.TrimSpace(m.read(ctx, domain.KeyAdminToken)),
		StudentToken: strings.TrimSpace(m.read(ctx, domain.KeyStudentToken)),
		ActiveRole:   domain.ParseRole(m.read(ctx, domain.KeyActiveRole)),
	}
}

// LoginAdmin stores the admin token and profile and makes admin the active role.
func (m *Manager) LoginAdmin(ctx context.Context, token string, profile domain.AdminProfile) error {
	profile.Token = ""
	if err := m.login(ctx, domain.RoleAdmin, token, domain.KeyAdminToken, domain.KeyAdminInfo, profile); err != nil {
		return err
	}
	m.publish(ctx, events.NewEvent(events.EventAdminLoggedIn, domain.RoleAdmin,
		events.LoginPayload{Identity: profile.Username, Name: profile.Nickname}))
	return nil
}

// LoginStudent stores the student token and profile and makes student the active role.
func (m *Manager) LoginStudent(ctx context.Context, token string, profile domain.StudentProfile) error {
	profile.Token = ""
	if err := m.login(ctx, domain.RoleStudent, token, domain.KeyStudentToken, domain.KeyStudentInfo, profile); err != nil {
		return err
	}
	m.publish(ctx, events.NewEvent(events.EventStudentLoggedIn, domain.RoleStudent,
		events.LoginPayload{Identity: profile.StudentNumber, Name: profile.Name}))
	return nil
}

func (m *Manager) login(ctx context.Context, role domain.Role, token, tokenKey, infoKey string, profile any) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	info, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode %s profile: %w", role, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := []struct{ key, value string }{
		{tokenKey, token},
		{infoKey, string(info)},
		{domain.KeyActiveRole, string(role)},
	}
	var written []savedEntry
	for _, e := range entries {
		written = append(written, m.save(ctx, e.key))
		if err := m.store.Set(ctx, e.key, e.value); err != nil {
			m.restore(ctx, written)
			return fmt.Errorf("store %s login (%s): %w", role, e.key, err)
		}
	}
	return nil
}

type savedEntry struct {
	key   string
	value string
	had   bool
}

// save must be called with mu held.
func (m *Manager) save(ctx context.Context, key string) savedEntry {
	v, ok, err := m.store.Get(ctx, key)
	return savedEntry{key: key, value: v, had: ok && err == nil}
}

// restore puts back entries overwritten by a login that failed part way.
// It must be called with mu held.
func (m *Manager) restore(ctx context.Context, entries []savedEntry) {
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		var err error
		if e.had {
			err = m.store.Set(ctx, e.key, e.value)
		} else {
			err = m.store.Delete(ctx, e.key)
		}
		if err != nil {
			m.logger.Error("failed to roll back credential entry", zap.String("key", e.key), zap.Error(err))
		}
	}
}

// Logout clears the credentials of role. RoleNone clears everything.
func (m *Manager) Logout(ctx context.Context, role domain.Role) error {
	var cleared []domain.Role

	err := func() error {
		m.mu.Lock()
		defer m.mu.Unlock()

		switch role {
		case domain.RoleNone:
			cleared = []domain.Role{domain.RoleAdmin, domain.RoleStudent}
			return m.store.Delete(ctx, domain.KeyAdminToken, domain.KeyAdminInfo,
				domain.KeyStudentToken, domain.KeyStudentInfo, domain.KeyActiveRole)
		case domain.RoleAdmin, domain.RoleStudent:
			cleared = []domain.Role{role}
			return m.clearRole(ctx, role)
		default:
			return fmt.Errorf("unknown role %q", role)
		}
	}()
	if err != nil {
		return err
	}

	m.publish(ctx, events.NewEvent(events.EventLoggedOut, role, events.LogoutPayload{Cleared: cleared}))
	return nil
}

// clearRole must be called with mu held.
func (m *Manager) clearRole(ctx context.Context, role domain.Role) error {
	keys := []string{domain.KeyAdminToken, domain.KeyAdminInfo}
	if role == domain.RoleStudent {
		keys = []string{domain.KeyStudentToken, domain.KeyStudentInfo}
	}
	if domain.ParseRole(m.read(ctx, domain.KeyActiveRole)) == role {
		keys = append(keys, domain.KeyActiveRole)
	}
	return m.store.Delete(ctx, keys...)
}

// RejectAdmin handles a backend authentication rejection of token. The admin
// token and cached profile are cleared only while token is still the stored
// one; a rejection of a token that was since replaced reports false and
// leaves the newer session alone.
func (m *Manager) RejectAdmin(ctx context.Context, token string) (bool, error) {
	return m.reject(ctx, domain.RoleAdmin, token, domain.KeyAdminToken, domain.KeyAdminInfo)
}

// RejectStudent is RejectAdmin for the student credential.
func (m *Manager) RejectStudent(ctx context.Context, token string) (bool, error) {
	return m.reject(ctx, domain.RoleStudent, token, domain.KeyStudentToken, domain.KeyStudentInfo)
}

func (m *Manager) reject(ctx context.Context, role domain.Role, token, tokenKey, infoKey string) (bool, error) {
	m.mu.Lock()
	if current := strings.TrimSpace(m.read(ctx, tokenKey)); current != strings.TrimSpace(token) {
		m.mu.Unlock()
		m.logger.Debug("ignoring rejection of a replaced token", zap.String("role", string(role)))
		return false, nil
	}
	err := m.store.Delete(ctx, tokenKey, infoKey)
	m.mu.Unlock()
	if err != nil {
		return false, fmt.Errorf("clear %s credentials: %w", role, err)
	}

	m.publish(ctx, events.NewEvent(events.EventCredentialsRejected, role,
		events.RejectedPayload{RedirectTo: role.LoginPath()}))
	return true, nil
}

// AdminProfile returns the cached admin profile, if any.
func (m *Manager) AdminProfile(ctx context.Context) (*domain.AdminProfile, bool) {
	var profile domain.AdminProfile
	if !m.profile(ctx, domain.KeyAdminInfo, &profile) {
		return nil, false
	}
	return &profile, true
}

// StudentProfile returns the cached student profile, if any.
func (m *Manager) StudentProfile(ctx context.Context) (*domain.StudentProfile, bool) {
	var profile domain.StudentProfile
	if !m.profile(ctx, domain.KeyStudentInfo, &profile) {
		return nil, false
	}
	return &profile, true
}

func (m *Manager) profile(ctx context.Context, key string, dst any) bool {
	m.mu.RLock()
	raw := m.read(ctx, key)
	m.mu.RUnlock()

	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		m.logger.Warn("ignoring malformed cached profile", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Ping checks that the store answers reads.
func (m *Manager) Ping(ctx context.Context) error {
	_, _, err := m.store.Get(ctx, domain.KeyActiveRole)
	return err
}

// read must be called with mu held (read or write).
func (m *Manager) read(ctx context.Context, key string) string {
	v, ok, err := m.store.Get(ctx, key)
	if err != nil {
		m.logger.Warn("credential store read failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return v
}

func (m *Manager) publish(ctx context.Context, event events.Event) {
	if m.dispatcher == nil {
		return
	}
	if err := m.dispatcher.Publish(ctx, event); err != nil {
		m.logger.Warn("session event handler failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}
