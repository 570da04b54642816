package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// ExamsAPI covers /v1/exams and exam records.
type ExamsAPI struct{ c *Client }

func (c *Client) Exams() ExamsAPI { return ExamsAPI{c} }

func (e ExamsAPI) List(ctx context.Context, f domain.ExamFilter) (domain.Page[domain.Exam], error) {
	query := pageQuery(f.PageQuery)
	if f.Title != "" {
		query.Set("title", f.Title)
	}
	if f.Status != nil {
		query.Set("status", strconv.Itoa(*f.Status))
	}
	if f.CreatedBy != nil {
		query.Set("createdBy", strconv.FormatInt(*f.CreatedBy, 10))
	}
	return call[domain.Page[domain.Exam]](ctx, e.c, http.MethodGet, "/v1/exams", query, nil)
}

func (e ExamsAPI) Get(ctx context.Context, id int64) (domain.Exam, error) {
	return call[domain.Exam](ctx, e.c, http.MethodGet, examPath(id), nil, nil)
}

func (e ExamsAPI) Create(ctx context.Context, exam domain.Exam) (domain.Exam, error) {
	return call[domain.Exam](ctx, e.c, http.MethodPost, "/v1/exams", nil, exam)
}

func (e ExamsAPI) Update(ctx context.Context, id int64, exam domain.Exam) (domain.Exam, error) {
	return call[domain.Exam](ctx, e.c, http.MethodPut, examPath(id), nil, exam)
}

func (e ExamsAPI) Delete(ctx context.Context, id int64) error {
	_, err := call[string](ctx, e.c, http.MethodDelete, examPath(id), nil, nil)
	return err
}

// Questions lists the questions attached to an exam, in exam order.
func (e ExamsAPI) Questions(ctx context.Context, examID int64) ([]domain.ExamQuestion, error) {
	return call[[]domain.ExamQuestion](ctx, e.c, http.MethodGet, examPath(examID)+"/questions", nil, nil)
}

// AddQuestion attaches a question. Zero order or score lets the backend choose.
func (e ExamsAPI) AddQuestion(ctx context.Context, examID, questionID int64, order int, score float64) error {
	body := map[string]any{"questionId": questionID}
	if order > 0 {
		body["order"] = order
	}
	if score > 0 {
		body["score"] = score
	}
	_, err := call[string](ctx, e.c, http.MethodPost, examPath(examID)+"/questions", nil, body)
	return err
}

func (e ExamsAPI) RemoveQuestion(ctx context.Context, examID, questionID int64) error {
	_, err := call[string](ctx, e.c, http.MethodDelete, fmt.Sprintf("%s/questions/%d", examPath(examID), questionID), nil, nil)
	return err
}

func (e ExamsAPI) UpdateQuestionScore(ctx context.Context, examID, questionID int64, score float64) error {
	path := fmt.Sprintf("%s/questions/%d/score", examPath(examID), questionID)
	_, err := call[string](ctx, e.c, http.MethodPut, path, nil, map[string]float64{"score": score})
	return err
}

func (e ExamsAPI) Statistics(ctx context.Context, examID int64) (domain.Stats, error) {
	return call[domain.Stats](ctx, e.c, http.MethodGet, examPath(examID)+"/statistics", nil, nil)
}

// Records pages through exam records across all exams.
func (e ExamsAPI) Records(ctx context.Context, f domain.RecordFilter) (domain.Page[domain.ExamRecord], error) {
	query := pageQuery(f.PageQuery)
	if f.ExamID != nil {
		query.Set("examId", strconv.FormatInt(*f.ExamID, 10))
	}
	if f.StudentName != "" {
		query.Set("studentName", f.StudentName)
	}
	if f.Status != nil {
		query.Set("status", strconv.Itoa(*f.Status))
	}
	return call[domain.Page[domain.ExamRecord]](ctx, e.c, http.MethodGet, "/v1/exams/records", query, nil)
}

func (e ExamsAPI) ExamRecords(ctx context.Context, examID int64) ([]domain.ExamRecord, error) {
	return call[[]domain.ExamRecord](ctx, e.c, http.MethodGet, examPath(examID)+"/records", nil, nil)
}

func (e ExamsAPI) Active(ctx context.Context) ([]domain.Exam, error) {
	return call[[]domain.Exam](ctx, e.c, http.MethodGet, "/v1/exams/active", nil, nil)
}

func (e ExamsAPI) Upcoming(ctx context.Context) ([]domain.Exam, error) {
	return call[[]domain.Exam](ctx, e.c, http.MethodGet, "/v1/exams/upcoming", nil, nil)
}

func (e ExamsAPI) UpdateRecordScore(ctx context.Context, recordID int64, score float64) error {
	_, err := call[string](ctx, e.c, http.MethodPut, recordPath(recordID)+"/score", nil, map[string]float64{"score": score})
	return err
}

// ResetRecord returns a record to the not-started state.
func (e ExamsAPI) ResetRecord(ctx context.Context, recordID int64) error {
	_, err := call[string](ctx, e.c, http.MethodPost, recordPath(recordID)+"/reset", nil, nil)
	return err
}

func (e ExamsAPI) DeleteRecord(ctx context.Context, recordID int64) error {
	_, err := call[string](ctx, e.c, http.MethodDelete, recordPath(recordID), nil, nil)
	return err
}

func (e ExamsAPI) UpdateStatus(ctx context.Context, id int64, status int) error {
	_, err := call[string](ctx, e.c, http.MethodPut, examPath(id)+"/status", nil, map[string]int{"status": status})
	return err
}

// Submit hands in a student's answers.
func (e ExamsAPI) Submit(ctx context.Context, sub domain.ExamSubmission) error {
	_, err := call[string](ctx, e.c, http.MethodPost, "/v1/exams/submit", nil, sub)
	return err
}

func examPath(id int64) string   { return fmt.Sprintf("/v1/exams/%d", id) }
func recordPath(id int64) string { return fmt.Sprintf("/v1/exams/records/%d", id) }
