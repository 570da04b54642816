package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/exam-portal/internal/domain"
	"github.com/spec-kit/exam-portal/internal/events"
	"github.com/spec-kit/exam-portal/internal/session"
)

func TestAuditServiceLogsSessionEvents(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(dispatcher, zap.New(core)).RegisterHandlers()

	m := session.NewManager(session.NewMemoryStore(), dispatcher, nil)
	require.NoError(t, m.LoginAdmin(ctx, "secret-token", domain.AdminProfile{Username: "root"}))
	_, err := m.RejectAdmin(ctx, "secret-token")
	require.NoError(t, err)
	require.NoError(t, m.Logout(ctx, domain.RoleNone))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "LoggedIn", entries[0].Message)
	assert.Equal(t, "root", entries[0].ContextMap()["identity"])
	assert.Equal(t, "CredentialsRejected", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "/login", entries[1].ContextMap()["redirect_to"])
	assert.Equal(t, "LoggedOut", entries[2].Message)

	for _, e := range entries {
		for _, v := range e.ContextMap() {
			assert.NotEqual(t, "secret-token", v)
		}
	}
}
