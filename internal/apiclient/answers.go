package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// AnswersAPI covers answer checking under /v1.
type AnswersAPI struct{ c *Client }

func (c *Client) Answers() AnswersAPI { return AnswersAPI{c} }

func (a AnswersAPI) Check(ctx context.Context, req domain.AnswerCheckRequest) (domain.AnswerCheckResult, error) {
	return call[domain.AnswerCheckResult](ctx, a.c, http.MethodPost, "/v1/check-answer", nil, req)
}

// CheckBatch checks several answers; per-answer failures are reported in the
// result's Error field, not as an error.
func (a AnswersAPI) CheckBatch(ctx context.Context, reqs []domain.AnswerCheckRequest) ([]domain.AnswerCheckResult, error) {
	body := map[string][]domain.AnswerCheckRequest{"answers": reqs}
	return call[[]domain.AnswerCheckResult](ctx, a.c, http.MethodPost, "/v1/check-answers", nil, body)
}

// QuestionInfo fetches a question without its answers.
func (a AnswersAPI) QuestionInfo(ctx context.Context, id int64) (domain.QuestionInfo, error) {
	return call[domain.QuestionInfo](ctx, a.c, http.MethodGet, fmt.Sprintf("/v1/question/%d", id), nil, nil)
}
