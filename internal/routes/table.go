package routes

import (
	"strings"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// Params holds values bound to ":name" segments of a route pattern.
type Params map[string]string

// Table is an ordered, immutable list of route descriptors.
type Table struct {
	routes []domain.RouteDescriptor
}

// NewTable copies routes into a new table. Order is preserved and is the
// lookup precedence.
func NewTable(routes []domain.RouteDescriptor) *Table {
	cp := make([]domain.RouteDescriptor, len(routes))
	copy(cp, routes)
	return &Table{routes: cp}
}

// Default returns the portal's route table.
func Default() *Table {
	admin := domain.AccessRequirement{RequiresAuth: true, UserType: domain.RoleAdmin}
	student := domain.AccessRequirement{RequiresAuth: true, UserType: domain.RoleStudent}

	return NewTable([]domain.RouteDescriptor{
		{Path: domain.PathRoot, RedirectTo: domain.PathAdminLogin},
		{Path: domain.PathAdminLogin, Name: "Login", View: "LoginPage"},
		{Path: domain.PathStudentLogin, Name: "StudentLogin", View: "StudentLoginPage"},
		{Path: domain.PathAdminDashboard, Name: "Dashboard", View: "Dashboard", Access: admin},
		{Path: domain.PathStudentDashboard, Name: "StudentDashboard", View: "StudentDashboard", Access: student},
		{Path: "/questions", Name: "QuestionManagement", View: "QuestionManagement", Access: admin},
		{Path: "/exams", Name: "ExamManagement", View: "ExamManagement", Access: admin},
		{Path: "/api", Name: "ApiManagement", View: "ApiManagement", Access: admin},
		{Path: "/students", Name: "StudentManagement", View: "StudentManagement", Access: admin},
		{Path: "/users", Name: "UserManagement", View: "UserManagement", Access: admin},
		{Path: "/student-exams", Name: "StudentExamResults", View: "StudentExamResults", Access: admin},
		{Path: "/student/exam/:id", Name: "ExamPage", View: "ExamPage", Access: student},
		{Path: "/student/results", Name: "StudentResults", View: "StudentResults", Access: student},
	})
}

// Routes returns a copy of the table in declaration order.
func (t *Table) Routes() []domain.RouteDescriptor {
	cp := make([]domain.RouteDescriptor, len(t.routes))
	copy(cp, t.routes)
	return cp
}

// Lookup resolves path against the table. The first matching pattern wins.
// Static segments match case-insensitively; bound params keep their case.
func (t *Table) Lookup(path string) (domain.RouteDescriptor, Params, bool) {
	segments := split(path)
	for _, route := range t.routes {
		if params, ok := match(split(route.Path), segments); ok {
			return route, params, true
		}
	}
	return domain.RouteDescriptor{}, nil, false
}

// Normalize strips the query string and trailing slashes from path.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	segments := split(path)
	return "/" + strings.Join(segments, "/")
}

// Expand fills pattern's ":name" segments from params, giving the path in
// the table's own spelling.
func Expand(pattern string, params Params) string {
	segments := split(pattern)
	for i, s := range segments {
		if name, ok := strings.CutPrefix(s, ":"); ok {
			segments[i] = params[name]
		}
	}
	return "/" + strings.Join(segments, "/")
}

func split(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func match(pattern, segments []string) (Params, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	params := Params{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			params[p[1:]] = segments[i]
			continue
		}
		if !strings.EqualFold(p, segments[i]) {
			return nil, false
		}
	}
	return params, true
}
