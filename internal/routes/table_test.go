package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/exam-portal/internal/domain"
)

func TestDefaultLookup(t *testing.T) {
	table := Default()

	tests := []struct {
		path     string
		name     string
		userType domain.Role
		auth     bool
	}{
		{"/login", "Login", domain.RoleNone, false},
		{"/student/login", "StudentLogin", domain.RoleNone, false},
		{"/dashboard", "Dashboard", domain.RoleAdmin, true},
		{"/questions/", "QuestionManagement", domain.RoleAdmin, true},
		{"/student-exams", "StudentExamResults", domain.RoleAdmin, true},
		{"/student/dashboard", "StudentDashboard", domain.RoleStudent, true},
		{"/student/results?tab=latest", "StudentResults", domain.RoleStudent, true},
	}

	for _, tt := range tests {
		route, _, ok := table.Lookup(tt.path)
		require.True(t, ok, tt.path)
		assert.Equal(t, tt.name, route.Name, tt.path)
		assert.Equal(t, tt.auth, route.Access.RequiresAuth, tt.path)
		assert.Equal(t, tt.userType, route.Access.UserType, tt.path)
	}
}

func TestLookupBindsParams(t *testing.T) {
	route, params, ok := Default().Lookup("/student/exam/42")
	require.True(t, ok)
	assert.Equal(t, "ExamPage", route.Name)
	assert.Equal(t, "42", params["id"])
}

func TestLookupRootRedirects(t *testing.T) {
	route, _, ok := Default().Lookup("/")
	require.True(t, ok)
	assert.True(t, route.IsRedirect())
	assert.Equal(t, domain.PathAdminLogin, route.RedirectTo)
}

func TestLookupUnknown(t *testing.T) {
	_, _, ok := Default().Lookup("/student/exam")
	assert.False(t, ok)

	_, _, ok = Default().Lookup("/nowhere")
	assert.False(t, ok)
}

func TestLookupFirstMatchWins(t *testing.T) {
	table := NewTable([]domain.RouteDescriptor{
		{Path: "/items/:id", Name: "Item"},
		{Path: "/items/new", Name: "NewItem"},
	})
	route, params, ok := table.Lookup("/items/new")
	require.True(t, ok)
	assert.Equal(t, "Item", route.Name)
	assert.Equal(t, "new", params["id"])
}

func TestRoutesReturnsCopy(t *testing.T) {
	table := Default()
	routes := table.Routes()
	routes[1].Name = "changed"

	route, _, _ := table.Lookup("/login")
	assert.Equal(t, "Login", route.Name)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "/", Normalize(""))
	assert.Equal(t, "/", Normalize("/"))
	assert.Equal(t, "/login", Normalize("/login/"))
	assert.Equal(t, "/student/exam/7", Normalize("//student//exam/7?x=1"))
}

func TestLookupIgnoresCase(t *testing.T) {
	table := Default()

	route, _, ok := table.Lookup("/Questions")
	require.True(t, ok)
	assert.Equal(t, "QuestionManagement", route.Name)

	route, params, ok := table.Lookup("/Student/EXAM/Ab7")
	require.True(t, ok)
	assert.Equal(t, "ExamPage", route.Name)
	assert.Equal(t, Params{"id": "Ab7"}, params)
}

func TestExpand(t *testing.T) {
	assert.Equal(t, "/student/exam/42", Expand("/student/exam/:id", Params{"id": "42"}))
	assert.Equal(t, "/login", Expand("/login", nil))
	assert.Equal(t, "/", Expand("/", nil))
}
