package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// StudentsAPI covers /admin/students.
type StudentsAPI struct{ c *Client }

func (c *Client) Students() StudentsAPI { return StudentsAPI{c} }

func (s StudentsAPI) List(ctx context.Context, q domain.PageQuery) (domain.Page[domain.Student], error) {
	return s.page(ctx, "/admin/students", pageQuery(q))
}

func (s StudentsAPI) Search(ctx context.Context, keyword string, q domain.PageQuery) (domain.Page[domain.Student], error) {
	query := pageQuery(q)
	query.Set("keyword", keyword)
	return s.page(ctx, "/admin/students/search", query)
}

func (s StudentsAPI) ByStatus(ctx context.Context, status int, q domain.PageQuery) (domain.Page[domain.Student], error) {
	return s.page(ctx, fmt.Sprintf("/admin/students/status/%d", status), pageQuery(q))
}

func (s StudentsAPI) ByClass(ctx context.Context, className string, q domain.PageQuery) (domain.Page[domain.Student], error) {
	return s.page(ctx, "/admin/students/class/"+url.PathEscape(className), pageQuery(q))
}

func (s StudentsAPI) ByMajor(ctx context.Context, major string, q domain.PageQuery) (domain.Page[domain.Student], error) {
	return s.page(ctx, "/admin/students/major/"+url.PathEscape(major), pageQuery(q))
}

func (s StudentsAPI) Get(ctx context.Context, id int64) (domain.Student, error) {
	return call[domain.Student](ctx, s.c, http.MethodGet, fmt.Sprintf("/admin/students/%d", id), nil, nil)
}

func (s StudentsAPI) UpdateStatus(ctx context.Context, id int64, status int) (domain.Student, error) {
	return call[domain.Student](ctx, s.c, http.MethodPut, fmt.Sprintf("/admin/students/%d/status", id), nil,
		map[string]int{"status": status})
}

func (s StudentsAPI) Delete(ctx context.Context, id int64) error {
	_, err := call[any](ctx, s.c, http.MethodDelete, fmt.Sprintf("/admin/students/%d", id), nil, nil)
	return err
}

// DeleteBatch removes several students in one call.
func (s StudentsAPI) DeleteBatch(ctx context.Context, ids []int64) error {
	_, err := call[any](ctx, s.c, http.MethodDelete, "/admin/students/batch", nil, ids)
	return err
}

func (s StudentsAPI) Statistics(ctx context.Context) (domain.StudentStatistics, error) {
	return call[domain.StudentStatistics](ctx, s.c, http.MethodGet, "/admin/students/statistics", nil, nil)
}

func (s StudentsAPI) Classes(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, s.c, http.MethodGet, "/admin/students/classes", nil, nil)
}

func (s StudentsAPI) Majors(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, s.c, http.MethodGet, "/admin/students/majors", nil, nil)
}

func (s StudentsAPI) Grades(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, s.c, http.MethodGet, "/admin/students/grades", nil, nil)
}

func (s StudentsAPI) page(ctx context.Context, path string, query url.Values) (domain.Page[domain.Student], error) {
	return call[domain.Page[domain.Student]](ctx, s.c, http.MethodGet, path, query, nil)
}
