package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/exam-portal/internal/domain"
	"github.com/spec-kit/exam-portal/internal/observability"
	"github.com/spec-kit/exam-portal/internal/routes"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

type staticCredentials domain.CredentialRecord

func (s staticCredentials) Snapshot(context.Context) domain.CredentialRecord {
	return domain.CredentialRecord(s)
}

func TestNavigate(t *testing.T) {
	admin := staticCredentials{AdminToken: "adm", ActiveRole: domain.RoleAdmin}
	student := staticCredentials{StudentToken: "stu", ActiveRole: domain.RoleStudent}

	tests := []struct {
		name  string
		creds staticCredentials
		path  string
		want  domain.NavigationOutcome
		route string
	}{
		{"anonymous admin page", staticCredentials{}, "/questions", domain.RedirectTo("/login"), "QuestionManagement"},
		{"anonymous login", staticCredentials{}, "/login", domain.Proceed(), "Login"},
		{"root goes to login", staticCredentials{}, "/", domain.RedirectTo("/login"), "Login"},
		{"root with admin session", admin, "/", domain.RedirectTo("/dashboard"), "Login"},
		{"admin on exams", admin, "/exams/", domain.Proceed(), "ExamManagement"},
		{"student on admin page", student, "/users", domain.RedirectTo("/login"), "UserManagement"},
		{"student takes exam", student, "/student/exam/42?from=list", domain.Proceed(), "ExamPage"},
		{"admin on student page", admin, "/student/results", domain.RedirectTo("/student/login"), "StudentResults"},
		{"mixed case admin page", staticCredentials{}, "/Questions", domain.RedirectTo("/login"), "QuestionManagement"},
		{"upper case login with admin session", admin, "/LOGIN", domain.RedirectTo("/dashboard"), "Login"},
		{"mixed case student page for admin", admin, "/Student/Results", domain.RedirectTo("/student/login"), "StudentResults"},
		{"mixed case page proceeds", admin, "/DASHBOARD", domain.Proceed(), "Dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(routes.Default(), tt.creds, nil, nil)
			got, err := nav.Navigate(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Outcome)
			assert.Equal(t, tt.route, got.Route.Name)
		})
	}
}

func TestNavigateBindsParams(t *testing.T) {
	nav := NewNavigator(routes.Default(), staticCredentials{StudentToken: "stu", ActiveRole: domain.RoleStudent}, nil, nil)

	got, err := nav.Navigate(context.Background(), "/student/exam/42")
	require.NoError(t, err)
	assert.Equal(t, routes.Params{"id": "42"}, got.Params)
}

func TestNavigateUnknownPath(t *testing.T) {
	nav := NewNavigator(routes.Default(), staticCredentials{}, nil, nil)

	_, err := nav.Navigate(context.Background(), "/nowhere")
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestNavigateRedirectLoop(t *testing.T) {
	table := routes.NewTable([]domain.RouteDescriptor{
		{Path: "/a", RedirectTo: "/b"},
		{Path: "/b", RedirectTo: "/a"},
	})
	nav := NewNavigator(table, staticCredentials{}, nil, nil)

	_, err := nav.Navigate(context.Background(), "/a")
	assert.Equal(t, http.StatusInternalServerError, apperrors.ToDomainError(err).HTTPStatus)
}

func TestNavigateRecordsMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	nav := NewNavigator(routes.Default(), staticCredentials{}, metrics, nil)

	_, err := nav.Navigate(context.Background(), "/dashboard")
	require.NoError(t, err)
	_, err = nav.Navigate(context.Background(), "/login")
	require.NoError(t, err)

	snap := metrics.Snapshot()
	assert.Equal(t, int64(1), snap.Navigations["/dashboard|redirect|/login"])
	assert.Equal(t, int64(1), snap.Navigations["/login|proceed"])
}

func TestNavigationMetricsKeyedByPattern(t *testing.T) {
	metrics := observability.NewMetrics()
	nav := NewNavigator(routes.Default(), staticCredentials{}, metrics, nil)

	for _, path := range []string{"/student/exam/1", "/student/exam/2", "/student/exam/3"} {
		_, err := nav.Navigate(context.Background(), path)
		require.NoError(t, err)
	}

	snap := metrics.Snapshot()
	assert.Len(t, snap.Navigations, 1)
	assert.Equal(t, int64(3), snap.Navigations["/student/exam/:id|redirect|/student/login"])
}
