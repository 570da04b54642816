package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// QuestionsAPI covers the question bank.
type QuestionsAPI struct{ c *Client }

func (c *Client) Questions() QuestionsAPI { return QuestionsAPI{c} }

// List pages through questions matching f.
func (q QuestionsAPI) List(ctx context.Context, f domain.QuestionFilter) (domain.Page[domain.Question], error) {
	query := pageQuery(domain.PageQuery{Page: f.Page, Size: f.Size})
	setFilter(query, f)
	return call[domain.Page[domain.Question]](ctx, q.c, http.MethodGet, "/questions", query, nil)
}

func (q QuestionsAPI) Get(ctx context.Context, id int64) (domain.Question, error) {
	return call[domain.Question](ctx, q.c, http.MethodGet, fmt.Sprintf("/questions/%d", id), nil, nil)
}

func (q QuestionsAPI) Create(ctx context.Context, req domain.QuestionRequest) (domain.Question, error) {
	return call[domain.Question](ctx, q.c, http.MethodPost, "/questions", nil, req)
}

func (q QuestionsAPI) Update(ctx context.Context, id int64, req domain.QuestionRequest) (domain.Question, error) {
	return call[domain.Question](ctx, q.c, http.MethodPut, fmt.Sprintf("/questions/%d", id), nil, req)
}

func (q QuestionsAPI) Delete(ctx context.Context, id int64) error {
	_, err := call[any](ctx, q.c, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil, nil)
	return err
}

func (q QuestionsAPI) Stats(ctx context.Context) (domain.Stats, error) {
	return call[domain.Stats](ctx, q.c, http.MethodGet, "/questions/stats", nil, nil)
}

func (q QuestionsAPI) Health(ctx context.Context) (string, error) {
	return call[string](ctx, q.c, http.MethodGet, "/questions/health", nil, nil)
}

// Export downloads the questions matching f as a spreadsheet. Paging fields
// are ignored.
func (q QuestionsAPI) Export(ctx context.Context, f domain.QuestionFilter) (*Download, error) {
	query := url.Values{}
	setFilter(query, f)
	return q.c.download(ctx, "/questions/export", query)
}

// Template downloads the empty import template.
func (q QuestionsAPI) Template(ctx context.Context) (*Download, error) {
	return q.c.download(ctx, "/questions/template", nil)
}

func setFilter(v url.Values, f domain.QuestionFilter) {
	if f.Keyword != "" {
		v.Set("keyword", f.Keyword)
	}
	if f.Type != "" {
		v.Set("type", string(f.Type))
	}
	if f.Difficulty != "" {
		v.Set("difficulty", string(f.Difficulty))
	}
}
