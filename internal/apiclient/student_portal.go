package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/exam-portal/internal/domain"
)

const defaultRecentRecords = 5

// StudentPortalAPI covers /v1/student. It is meant for a client built with
// StudentBearer.
type StudentPortalAPI struct{ c *Client }

func (c *Client) StudentPortal() StudentPortalAPI { return StudentPortalAPI{c} }

func (s StudentPortalAPI) AvailableExams(ctx context.Context, studentID int64) ([]domain.Exam, error) {
	return call[[]domain.Exam](ctx, s.c, http.MethodGet, "/v1/student/exams/available", studentQuery(studentID), nil)
}

func (s StudentPortalAPI) ParticipatedExams(ctx context.Context, studentID int64) ([]domain.Exam, error) {
	return call[[]domain.Exam](ctx, s.c, http.MethodGet, "/v1/student/exams/participated", studentQuery(studentID), nil)
}

// RecentRecords returns up to limit records; limit <= 0 means 5.
func (s StudentPortalAPI) RecentRecords(ctx context.Context, studentID int64, limit int) ([]domain.ExamRecord, error) {
	if limit <= 0 {
		limit = defaultRecentRecords
	}
	query := studentQuery(studentID)
	query.Set("limit", strconv.Itoa(limit))
	return call[[]domain.ExamRecord](ctx, s.c, http.MethodGet, "/v1/student/exam-records/recent", query, nil)
}

func (s StudentPortalAPI) RecordAnswers(ctx context.Context, recordID, studentID int64) ([]domain.StudentAnswer, error) {
	path := fmt.Sprintf("/v1/student/exam-records/%d/answers", recordID)
	return call[[]domain.StudentAnswer](ctx, s.c, http.MethodGet, path, studentQuery(studentID), nil)
}

func studentQuery(studentID int64) url.Values {
	return url.Values{"studentId": {strconv.FormatInt(studentID, 10)}}
}
