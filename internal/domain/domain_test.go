package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"admin", RoleAdmin},
		{"student", RoleStudent},
		{"", RoleNone},
		{"ADMIN", RoleNone},
		{" admin", RoleNone},
		{"teacher", RoleNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.raw), "raw=%q", tt.raw)
	}
}

func TestCredentialRecordBlankTokensAreAbsent(t *testing.T) {
	rec := CredentialRecord{AdminToken: "   ", StudentToken: "\t"}
	assert.False(t, rec.HasAdminToken())
	assert.False(t, rec.HasStudentToken())
	assert.Empty(t, rec.TokenFor(RoleAdmin))

	rec = CredentialRecord{AdminToken: "a", StudentToken: "s"}
	assert.Equal(t, "a", rec.TokenFor(RoleAdmin))
	assert.Equal(t, "s", rec.TokenFor(RoleStudent))
	assert.Empty(t, rec.TokenFor(RoleNone))
}

func TestRolePaths(t *testing.T) {
	assert.Equal(t, PathAdminLogin, RoleAdmin.LoginPath())
	assert.Equal(t, PathStudentLogin, RoleStudent.LoginPath())
	assert.Equal(t, PathAdminDashboard, RoleAdmin.DashboardPath())
	assert.Equal(t, PathStudentDashboard, RoleStudent.DashboardPath())
}

func TestTimestampAcceptsBackendLayouts(t *testing.T) {
	var exam Exam
	err := json.Unmarshal([]byte(`{"title":"Midterm","startTime":"2024-05-01T09:30:00","endTime":"2024-05-01T11:00:00.123","createdAt":null}`), &exam)
	require.NoError(t, err)

	assert.Equal(t, 9, exam.StartTime.Hour())
	assert.Equal(t, 30, exam.StartTime.Minute())
	assert.Equal(t, 11, exam.EndTime.Hour())
	assert.True(t, exam.CreatedAt.IsZero())

	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}
