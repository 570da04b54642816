package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/exam-portal/internal/apiclient"
	"github.com/spec-kit/exam-portal/internal/domain"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

// AuthBackend is the slice of the backend auth API the portal drives.
type AuthBackend interface {
	Login(ctx context.Context, creds domain.AdminCredentials) (domain.AdminProfile, error)
	StudentLogin(ctx context.Context, creds domain.StudentCredentials) (domain.StudentProfile, error)
	Logout(ctx context.Context) error
}

// CredentialWriter persists login state.
type CredentialWriter interface {
	Snapshot(ctx context.Context) domain.CredentialRecord
	LoginAdmin(ctx context.Context, token string, profile domain.AdminProfile) error
	LoginStudent(ctx context.Context, token string, profile domain.StudentProfile) error
	Logout(ctx context.Context, role domain.Role) error
}

// AuthService coordinates backend login and the local credential record.
type AuthService struct {
	backend     AuthBackend
	credentials CredentialWriter
	logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(backend AuthBackend, credentials CredentialWriter, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{backend: backend, credentials: credentials, logger: logger}
}

// LoginAdmin authenticates against the backend and stores the admin session.
// The returned profile carries no token.
func (s *AuthService) LoginAdmin(ctx context.Context, creds domain.AdminCredentials) (*domain.AdminProfile, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return nil, apperrors.NewValidationError("username and password are required", nil)
	}

	profile, err := s.backend.Login(ctx, creds)
	if err != nil {
		return nil, apiclient.ToDomainError(err)
	}
	token := profile.Token
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.NewBadGateway("backend login response carried no token", nil)
	}
	if err := s.credentials.LoginAdmin(ctx, token, profile); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	profile.Token = ""
	return &profile, nil
}

// LoginStudent authenticates a student and stores the student session.
func (s *AuthService) LoginStudent(ctx context.Context, creds domain.StudentCredentials) (*domain.StudentProfile, error) {
	creds.StudentNumber = strings.TrimSpace(creds.StudentNumber)
	if creds.StudentNumber == "" || creds.Password == "" {
		return nil, apperrors.NewValidationError("student number and password are required", nil)
	}

	profile, err := s.backend.StudentLogin(ctx, creds)
	if err != nil {
		return nil, apiclient.ToDomainError(err)
	}
	token := profile.Token
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.NewBadGateway("backend login response carried no token", nil)
	}
	if err := s.credentials.LoginStudent(ctx, token, profile); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	profile.Token = ""
	return &profile, nil
}

// Logout clears role's credentials; RoleNone clears both. The backend is told
// about admin logouts on a best-effort basis.
func (s *AuthService) Logout(ctx context.Context, role domain.Role) error {
	if role != domain.RoleNone && !role.Valid() {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": string(role)})
	}

	if role != domain.RoleStudent && s.credentials.Snapshot(ctx).HasAdminToken() {
		if err := s.backend.Logout(ctx); err != nil {
			s.logger.Warn("backend logout failed", zap.Error(err))
		}
	}
	if err := s.credentials.Logout(ctx, role); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}
