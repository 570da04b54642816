package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/exam-portal/internal/domain"
)

var (
	adminLogin = domain.RouteDescriptor{Path: domain.PathAdminLogin, Name: "Login", View: "LoginPage"}
	studLogin  = domain.RouteDescriptor{Path: domain.PathStudentLogin, Name: "StudentLogin", View: "StudentLoginPage"}
	adminPage  = domain.RouteDescriptor{
		Path:   "/questions",
		Name:   "QuestionManagement",
		View:   "QuestionManagement",
		Access: domain.AccessRequirement{RequiresAuth: true, UserType: domain.RoleAdmin},
	}
	studPage = domain.RouteDescriptor{
		Path:   "/student/results",
		Name:   "StudentResults",
		View:   "StudentResults",
		Access: domain.AccessRequirement{RequiresAuth: true, UserType: domain.RoleStudent},
	}
)

func adminSession() domain.CredentialRecord {
	return domain.CredentialRecord{AdminToken: "adm", ActiveRole: domain.RoleAdmin}
}

func studentSession() domain.CredentialRecord {
	return domain.CredentialRecord{StudentToken: "stu", ActiveRole: domain.RoleStudent}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		target domain.RouteDescriptor
		path   string
		rec    domain.CredentialRecord
		want   domain.NavigationOutcome
	}{
		{"public route without credentials", adminLogin, domain.PathAdminLogin, domain.CredentialRecord{}, domain.Proceed()},
		{"student login without credentials", studLogin, domain.PathStudentLogin, domain.CredentialRecord{}, domain.Proceed()},
		{"admin revisits login", adminLogin, domain.PathAdminLogin, adminSession(), domain.RedirectTo(domain.PathAdminDashboard)},
		{"student revisits login", studLogin, domain.PathStudentLogin, studentSession(), domain.RedirectTo(domain.PathStudentDashboard)},
		{"admin token but student role on admin login", adminLogin, domain.PathAdminLogin,
			domain.CredentialRecord{AdminToken: "adm", ActiveRole: domain.RoleStudent}, domain.Proceed()},
		{"admin visits student login", studLogin, domain.PathStudentLogin, adminSession(), domain.Proceed()},
		{"student visits admin login", adminLogin, domain.PathAdminLogin, studentSession(), domain.Proceed()},
		{"admin page without admin token", adminPage, adminPage.Path, domain.CredentialRecord{}, domain.RedirectTo(domain.PathAdminLogin)},
		{"admin page with only student session", adminPage, adminPage.Path, domain.CredentialRecord{StudentToken: "stu"},
			domain.RedirectTo(domain.PathAdminLogin)},
		{"student page without student token", studPage, studPage.Path, domain.CredentialRecord{}, domain.RedirectTo(domain.PathStudentLogin)},
		{"student page with only admin session", studPage, studPage.Path, adminSession(), domain.RedirectTo(domain.PathStudentLogin)},
		{"admin on admin page", adminPage, adminPage.Path, adminSession(), domain.Proceed()},
		{"student on student page", studPage, studPage.Path, studentSession(), domain.Proceed()},
		{"admin token with student role on admin page", adminPage, adminPage.Path,
			domain.CredentialRecord{AdminToken: "adm", StudentToken: "stu", ActiveRole: domain.RoleStudent},
			domain.RedirectTo(domain.PathStudentDashboard)},
		{"student token with admin role on student page", studPage, studPage.Path,
			domain.CredentialRecord{AdminToken: "adm", StudentToken: "stu", ActiveRole: domain.RoleAdmin},
			domain.RedirectTo(domain.PathAdminDashboard)},
		{"blank admin token counts as absent", adminPage, adminPage.Path,
			domain.CredentialRecord{AdminToken: "  ", ActiveRole: domain.RoleAdmin}, domain.RedirectTo(domain.PathAdminLogin)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.target, tt.path, tt.rec))
		})
	}
}

func TestPublicRoutesProceedWithoutCredentials(t *testing.T) {
	for _, path := range []string{"/", "/login", "/student/login", "/about"} {
		route := domain.RouteDescriptor{Path: path}
		assert.Equal(t, domain.Proceed(), Decide(route, path, domain.CredentialRecord{}), path)
	}
}

func TestAdminRoutesIgnoreStudentStateWithoutAdminToken(t *testing.T) {
	for _, rec := range []domain.CredentialRecord{
		{},
		{StudentToken: "stu"},
		{StudentToken: "stu", ActiveRole: domain.RoleStudent},
		{StudentToken: "stu", ActiveRole: domain.RoleAdmin},
		{ActiveRole: domain.RoleAdmin},
	} {
		assert.Equal(t, domain.RedirectTo(domain.PathAdminLogin), Decide(adminPage, adminPage.Path, rec))
	}
}

func TestStudentRoutesIgnoreAdminStateWithoutStudentToken(t *testing.T) {
	for _, rec := range []domain.CredentialRecord{
		{},
		{AdminToken: "adm"},
		{AdminToken: "adm", ActiveRole: domain.RoleAdmin},
		{AdminToken: "adm", ActiveRole: domain.RoleStudent},
		{ActiveRole: domain.RoleStudent},
	} {
		assert.Equal(t, domain.RedirectTo(domain.PathStudentLogin), Decide(studPage, studPage.Path, rec))
	}
}

func TestCrossRoleRedirectsToOwnDashboard(t *testing.T) {
	// Both tokens present: the active role is the tie-breaker.
	both := domain.CredentialRecord{AdminToken: "adm", StudentToken: "stu", ActiveRole: domain.RoleStudent}
	assert.Equal(t, domain.RedirectTo(domain.PathStudentDashboard), Decide(adminPage, adminPage.Path, both))
	assert.Equal(t, domain.Proceed(), Decide(studPage, studPage.Path, both))

	both.ActiveRole = domain.RoleAdmin
	assert.Equal(t, domain.Proceed(), Decide(adminPage, adminPage.Path, both))
	assert.Equal(t, domain.RedirectTo(domain.PathAdminDashboard), Decide(studPage, studPage.Path, both))
}

func TestBothTokensWithoutActiveRole(t *testing.T) {
	both := domain.CredentialRecord{AdminToken: "adm", StudentToken: "stu"}

	assert.Equal(t, domain.RedirectTo(domain.PathStudentDashboard), Decide(adminPage, adminPage.Path, both))
	assert.Equal(t, domain.RedirectTo(domain.PathAdminDashboard), Decide(studPage, studPage.Path, both))
	assert.Equal(t, domain.Proceed(), Decide(adminLogin, domain.PathAdminLogin, both))
	assert.Equal(t, domain.Proceed(), Decide(studLogin, domain.PathStudentLogin, both))
}

func TestDecideIsIdempotent(t *testing.T) {
	records := []domain.CredentialRecord{{}, adminSession(), studentSession(),
		{AdminToken: "adm", StudentToken: "stu"}}
	routes := []domain.RouteDescriptor{adminLogin, studLogin, adminPage, studPage}

	for _, rec := range records {
		for _, route := range routes {
			first := Decide(route, route.Path, rec)
			second := Decide(route, route.Path, rec)
			assert.Equal(t, first, second)
		}
	}
}

func TestDecideDoesNotMutateRecord(t *testing.T) {
	rec := domain.CredentialRecord{AdminToken: "adm", ActiveRole: domain.RoleStudent}
	before := rec
	_ = Decide(adminPage, adminPage.Path, rec)
	assert.Equal(t, before, rec)
}
