package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/exam-portal/internal/api/dto"
	"github.com/spec-kit/exam-portal/internal/auth"
	"github.com/spec-kit/exam-portal/internal/domain"
	"github.com/spec-kit/exam-portal/internal/service"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

// SessionReader exposes the stored session for display.
type SessionReader interface {
	Snapshot(ctx context.Context) domain.CredentialRecord
	AdminProfile(ctx context.Context) (*domain.AdminProfile, bool)
	StudentProfile(ctx context.Context) (*domain.StudentProfile, bool)
}

// SessionHandler exposes login, logout and session inspection.
type SessionHandler struct {
	auth    *service.AuthService
	session SessionReader
}

// NewSessionHandler constructs handler.
func NewSessionHandler(authService *service.AuthService, session SessionReader) *SessionHandler {
	return &SessionHandler{auth: authService, session: session}
}

// AdminLogin handles POST /session/admin/login.
func (h *SessionHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.auth.LoginAdmin(c.UserContext(), domain.AdminCredentials{
		Username:   req.Username,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Role:     domain.RoleAdmin,
		Redirect: domain.RoleAdmin.DashboardPath(),
		Profile:  profile,
	}})
}

// StudentLogin handles POST /session/student/login.
func (h *SessionHandler) StudentLogin(c *fiber.Ctx) error {
	var req dto.StudentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.auth.LoginStudent(c.UserContext(), domain.StudentCredentials{
		StudentNumber: req.StudentNumber,
		Password:      req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Role:     domain.RoleStudent,
		Redirect: domain.RoleStudent.DashboardPath(),
		Profile:  profile,
	}})
}

// Logout handles POST /session/logout. An empty body logs out both roles.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}

	role := domain.ParseRole(req.Role)
	if req.Role != "" && role == domain.RoleNone {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": req.Role})
	}
	if err := h.auth.Logout(c.UserContext(), role); err != nil {
		return err
	}

	redirect := domain.PathAdminLogin
	if role == domain.RoleStudent {
		redirect = domain.PathStudentLogin
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"redirect": redirect}})
}

// Current handles GET /session.
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	ctx := c.UserContext()
	snap := h.session.Snapshot(ctx)
	resp := dto.SessionResponse{ActiveRole: snap.ActiveRole}

	if snap.HasAdminToken() {
		resp.Admin = dto.RoleSession{LoggedIn: true, Token: tokenInfo(snap.AdminToken)}
		if p, ok := h.session.AdminProfile(ctx); ok {
			resp.Admin.Profile = p
		}
	}
	if snap.HasStudentToken() {
		resp.Student = dto.RoleSession{LoggedIn: true, Token: tokenInfo(snap.StudentToken)}
		if p, ok := h.session.StudentProfile(ctx); ok {
			resp.Student.Profile = p
		}
	}
	return c.JSON(fiber.Map{"data": resp})
}

func tokenInfo(token string) *auth.TokenInfo {
	info, err := auth.InspectToken(token)
	if err != nil {
		return nil
	}
	return &info
}
