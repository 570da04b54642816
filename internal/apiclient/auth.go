package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// AuthAPI covers /auth.
type AuthAPI struct{ c *Client }

// Auth returns the authentication endpoints.
func (c *Client) Auth() AuthAPI { return AuthAPI{c} }

// Login exchanges admin credentials for a profile carrying a token. A 401
// here is a failed attempt, not a rejected session.
func (a AuthAPI) Login(ctx context.Context, creds domain.AdminCredentials) (domain.AdminProfile, error) {
	return call[domain.AdminProfile](withoutRejection(ctx), a.c, http.MethodPost, "/auth/login", nil, creds)
}

// StudentLogin exchanges a student number and password for a profile.
func (a AuthAPI) StudentLogin(ctx context.Context, creds domain.StudentCredentials) (domain.StudentProfile, error) {
	return call[domain.StudentProfile](withoutRejection(ctx), a.c, http.MethodPost, "/auth/student/login", nil, creds)
}

func (a AuthAPI) Logout(ctx context.Context) error {
	_, err := call[string](ctx, a.c, http.MethodPost, "/auth/logout", nil, nil)
	return err
}

// CheckUsername reports whether username is taken.
func (a AuthAPI) CheckUsername(ctx context.Context, username string) (bool, error) {
	return call[bool](ctx, a.c, http.MethodGet, "/auth/check-username", url.Values{"username": {username}}, nil)
}

// CheckEmail reports whether email is taken.
func (a AuthAPI) CheckEmail(ctx context.Context, email string) (bool, error) {
	return call[bool](ctx, a.c, http.MethodGet, "/auth/check-email", url.Values{"email": {email}}, nil)
}

func (a AuthAPI) Health(ctx context.Context) (string, error) {
	return call[string](ctx, a.c, http.MethodGet, "/auth/health", nil, nil)
}

// Ping checks that the backend answers. It never triggers the 401 handler.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Auth().Health(withoutRejection(ctx))
	return err
}
