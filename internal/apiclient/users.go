package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// backendTimeLayout is the ISO local date-time the backend binds query
// parameters with.
const backendTimeLayout = "2006-01-02T15:04:05"

// UsersAPI covers /admin/users.
type UsersAPI struct{ c *Client }

func (c *Client) Users() UsersAPI { return UsersAPI{c} }

func (u UsersAPI) List(ctx context.Context, q domain.PageQuery) (domain.Page[domain.User], error) {
	return u.page(ctx, "/admin/users", pageQuery(q))
}

func (u UsersAPI) Search(ctx context.Context, keyword string, q domain.PageQuery) (domain.Page[domain.User], error) {
	query := pageQuery(q)
	query.Set("keyword", keyword)
	return u.page(ctx, "/admin/users/search", query)
}

func (u UsersAPI) ByStatus(ctx context.Context, status int, q domain.PageQuery) (domain.Page[domain.User], error) {
	return u.page(ctx, fmt.Sprintf("/admin/users/status/%d", status), pageQuery(q))
}

func (u UsersAPI) Statistics(ctx context.Context) (domain.Stats, error) {
	return call[domain.Stats](ctx, u.c, http.MethodGet, "/admin/users/statistics", nil, nil)
}

func (u UsersAPI) Get(ctx context.Context, id int64) (domain.User, error) {
	return call[domain.User](ctx, u.c, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, nil)
}

// UpdateStatus sends the status as a query parameter, unlike students.
func (u UsersAPI) UpdateStatus(ctx context.Context, id int64, status int) (domain.User, error) {
	query := url.Values{"status": {strconv.Itoa(status)}}
	return call[domain.User](ctx, u.c, http.MethodPut, fmt.Sprintf("/admin/users/%d/status", id), query, nil)
}

// RecentActive lists users who logged in within the last days.
func (u UsersAPI) RecentActive(ctx context.Context, days int, q domain.PageQuery) (domain.Page[domain.User], error) {
	query := pageQuery(q)
	if days <= 0 {
		days = 7
	}
	query.Set("days", strconv.Itoa(days))
	return u.page(ctx, "/admin/users/recent-active", query)
}

func (u UsersAPI) NeverLoggedIn(ctx context.Context, q domain.PageQuery) (domain.Page[domain.User], error) {
	return u.page(ctx, "/admin/users/never-logged-in", pageQuery(q))
}

func (u UsersAPI) CreatedBetween(ctx context.Context, start, end time.Time, q domain.PageQuery) (domain.Page[domain.User], error) {
	query := pageQuery(q)
	query.Set("startTime", start.Format(backendTimeLayout))
	query.Set("endTime", end.Format(backendTimeLayout))
	return u.page(ctx, "/admin/users/created-between", query)
}

func (u UsersAPI) page(ctx context.Context, path string, query url.Values) (domain.Page[domain.User], error) {
	return call[domain.Page[domain.User]](ctx, u.c, http.MethodGet, path, query, nil)
}
