package domain

import "strings"

// Keys of the persisted credential record.
const (
	KeyAdminToken   = "token"
	KeyStudentToken = "studentToken"
	KeyActiveRole   = "userType"
	KeyAdminInfo    = "userInfo"
	KeyStudentInfo  = "studentInfo"
)

// CredentialRecord is an immutable snapshot of the persisted session state.
type CredentialRecord struct {
	AdminToken   string
	StudentToken string
	ActiveRole   Role
}

// HasAdminToken reports whether an admin bearer token is present.
func (r CredentialRecord) HasAdminToken() bool {
	return strings.TrimSpace(r.AdminToken) != ""
}

// HasStudentToken reports whether a student bearer token is present.
func (r CredentialRecord) HasStudentToken() bool {
	return strings.TrimSpace(r.StudentToken) != ""
}

// TokenFor returns the token held for role, or "" when absent.
func (r CredentialRecord) TokenFor(role Role) string {
	switch role {
	case RoleAdmin:
		if r.HasAdminToken() {
			return r.AdminToken
		}
	case RoleStudent:
		if r.HasStudentToken() {
			return r.StudentToken
		}
	}
	return ""
}
