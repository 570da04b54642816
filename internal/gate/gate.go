// Package gate decides whether a navigation attempt may proceed.
//
// Decide is a pure function of the target route and a credential snapshot.
// It never touches storage and never fails: absent or malformed credentials
// are simply "not authenticated".
package gate

import "github.com/spec-kit/exam-portal/internal/domain"

// Decide evaluates one navigation attempt. path is the resolved target path;
// rules are checked in order and the first match wins.
func Decide(target domain.RouteDescriptor, path string, rec domain.CredentialRecord) domain.NavigationOutcome {
	access := target.Access

	if !access.RequiresAuth {
		switch {
		case path == domain.PathAdminLogin && rec.HasAdminToken() && rec.ActiveRole == domain.RoleAdmin:
			return domain.RedirectTo(domain.PathAdminDashboard)
		case path == domain.PathStudentLogin && rec.HasStudentToken() && rec.ActiveRole == domain.RoleStudent:
			return domain.RedirectTo(domain.PathStudentDashboard)
		default:
			return domain.Proceed()
		}
	}

	switch {
	case access.UserType == domain.RoleAdmin && !rec.HasAdminToken():
		return domain.RedirectTo(domain.PathAdminLogin)
	case access.UserType == domain.RoleStudent && !rec.HasStudentToken():
		return domain.RedirectTo(domain.PathStudentLogin)
	case access.UserType == domain.RoleAdmin && rec.ActiveRole != domain.RoleAdmin:
		// authenticated students are bounced, not logged out
		return domain.RedirectTo(domain.PathStudentDashboard)
	case access.UserType == domain.RoleStudent && rec.ActiveRole != domain.RoleStudent:
		return domain.RedirectTo(domain.PathAdminDashboard)
	default:
		return domain.Proceed()
	}
}
