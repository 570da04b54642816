package apiclient

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// CredentialSource yields the current credential snapshot.
type CredentialSource interface {
	Snapshot(ctx context.Context) domain.CredentialRecord
}

// Reloader forces the portal back to path, discarding in-page state.
type Reloader func(ctx context.Context, path string)

// AdminBearer attaches the admin token, when present, as a bearer credential.
func AdminBearer(src CredentialSource) Authorizer {
	return bearer(src, domain.RoleAdmin)
}

// StudentBearer attaches the student token, when present.
func StudentBearer(src CredentialSource) Authorizer {
	return bearer(src, domain.RoleStudent)
}

func bearer(src CredentialSource, role domain.Role) Authorizer {
	return func(ctx context.Context, req *http.Request) {
		if token := src.Snapshot(ctx).TokenFor(role); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// RejectAndReload builds the 401 interceptor: clear the rejected credential
// with reject, then reload to the role's login page. A rejection of a token
// that is no longer stored changes nothing and does not reload.
func RejectAndReload(role domain.Role, reject func(ctx context.Context, token string) (bool, error), reload Reloader, logger *zap.Logger) UnauthorizedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, token string) {
		cleared, err := reject(ctx, token)
		if err != nil {
			logger.Error("failed to clear rejected credentials", zap.String("role", string(role)), zap.Error(err))
		} else if !cleared {
			return
		}
		if reload != nil {
			reload(ctx, role.LoginPath())
		}
	}
}
