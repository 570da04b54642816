package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "root",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("backend-only-key"))
	require.NoError(t, err)

	info, err := InspectToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "root", info.Subject)
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, exp.Equal(*info.ExpiresAt))
	assert.Nil(t, info.IssuedAt)
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(exp.Add(time.Second)))
}

func TestInspectOpaqueToken(t *testing.T) {
	for _, token := range []string{"", "abc123", "a.b"} {
		_, err := InspectToken(token)
		assert.ErrorIs(t, err, ErrOpaqueToken, token)
	}
	assert.False(t, TokenInfo{}.Expired(time.Now()))
}
