package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/exam-portal/internal/domain"
)

const principalKey = "auth_principal"

// CredentialSource yields the current credential snapshot.
type CredentialSource interface {
	Snapshot(ctx context.Context) domain.CredentialRecord
}

// Principal is the credential snapshot a request was evaluated against.
type Principal struct {
	Credentials domain.CredentialRecord
}

// Role is the active role recorded at login.
func (p *Principal) Role() domain.Role {
	return p.Credentials.ActiveRole
}

// SessionMiddleware loads one credential snapshot per request.
type SessionMiddleware struct {
	credentials CredentialSource
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(credentials CredentialSource) *SessionMiddleware {
	return &SessionMiddleware{credentials: credentials}
}

// Handle stores the snapshot in the request locals. It never rejects; use
// RequireRole for that.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	snap := m.credentials.Snapshot(c.UserContext())
	c.Locals(principalKey, &Principal{Credentials: snap})
	return c.Next()
}

// PrincipalFromContext retrieves the snapshot loaded by SessionMiddleware.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
