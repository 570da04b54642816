package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/exam-portal/internal/domain"
	"github.com/spec-kit/exam-portal/internal/gate"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

// RequireRole guards a route group the same way the navigation gate guards
// a page that requires role. A missing token yields 401 pointing at the
// role's login page; a session of the other role yields 403 pointing at
// that role's dashboard.
func RequireRole(role domain.Role) fiber.Handler {
	guarded := domain.RouteDescriptor{
		Access: domain.AccessRequirement{RequiresAuth: true, UserType: role},
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.WithRedirect(apperrors.NewUnauthorized("no session"), role.LoginPath())
		}

		outcome := gate.Decide(guarded, c.Path(), principal.Credentials)
		if !outcome.IsRedirect() {
			return c.Next()
		}
		if outcome.Location == role.LoginPath() {
			return apperrors.WithRedirect(apperrors.NewUnauthorized(string(role)+" login required"), outcome.Location)
		}
		return apperrors.WithRedirect(apperrors.NewForbidden(string(role)+" role required"), outcome.Location)
	}
}
