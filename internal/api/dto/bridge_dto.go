package dto

import "github.com/spec-kit/exam-portal/internal/domain"

// ScoreRequest updates a score.
type ScoreRequest struct {
	Score *float64 `json:"score"`
}

// StatusRequest updates a status.
type StatusRequest struct {
	Status *int `json:"status"`
}

// AddExamQuestionRequest attaches a question to an exam.
type AddExamQuestionRequest struct {
	QuestionID int64   `json:"questionId"`
	Order      int     `json:"order"`
	Score      float64 `json:"score"`
}

// BatchCheckRequest wraps several answers for checking.
type BatchCheckRequest struct {
	Answers []domain.AnswerCheckRequest `json:"answers"`
}

// SubmitRequest is a student's exam submission. The student id is taken
// from the session, not the payload.
type SubmitRequest struct {
	ExamID     int64          `json:"examId"`
	Answers    map[string]any `json:"answers"`
	SubmitTime string         `json:"submitTime"`
}
