package dto

import (
	"github.com/spec-kit/exam-portal/internal/auth"
	"github.com/spec-kit/exam-portal/internal/domain"
)

// AdminLoginRequest payload for POST /session/admin/login.
type AdminLoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// StudentLoginRequest payload for POST /session/student/login.
type StudentLoginRequest struct {
	StudentNumber string `json:"studentNumber"`
	Password      string `json:"password"`
}

// LogoutRequest names the role to log out; empty logs out both.
type LogoutRequest struct {
	Role string `json:"role"`
}

// RoleSession describes one role's stored credential. Token values are
// never exposed.
type RoleSession struct {
	LoggedIn bool            `json:"logged_in"`
	Token    *auth.TokenInfo `json:"token,omitempty"`
	Profile  any             `json:"profile,omitempty"`
}

// SessionResponse is the body of GET /session.
type SessionResponse struct {
	ActiveRole domain.Role `json:"active_role"`
	Admin      RoleSession `json:"admin"`
	Student    RoleSession `json:"student"`
}

// LoginResponse is returned by the login endpoints.
type LoginResponse struct {
	Role     domain.Role `json:"role"`
	Redirect string      `json:"redirect"`
	Profile  any         `json:"profile"`
}
