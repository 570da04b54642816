package session

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/exam-portal/internal/domain"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("PORTAL_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PORTAL_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	key := "exam-portal:test:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })

	m := NewManager(NewRedisStore(client, key), nil, nil)
	require.NoError(t, m.LoginStudent(ctx, "stu", domain.StudentProfile{StudentNumber: "S9"}))
	assert.Equal(t, domain.RoleStudent, m.Snapshot(ctx).ActiveRole)

	cleared, err := m.RejectStudent(ctx, "stu")
	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Empty(t, m.Snapshot(ctx).StudentToken)
}
