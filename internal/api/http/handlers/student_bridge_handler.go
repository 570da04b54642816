package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/exam-portal/internal/api/dto"
	"github.com/spec-kit/exam-portal/internal/apiclient"
	"github.com/spec-kit/exam-portal/internal/domain"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

const student = domain.RoleStudent

// StudentProfiles yields the logged-in student's cached profile.
type StudentProfiles interface {
	StudentProfile(ctx context.Context) (*domain.StudentProfile, bool)
}

// StudentBridgeHandler forwards student portal calls with the student
// credential. The student id always comes from the session.
type StudentBridgeHandler struct {
	client   *apiclient.Client
	profiles StudentProfiles
}

// NewStudentBridgeHandler constructs handler. client must authorize with
// the student token.
func NewStudentBridgeHandler(client *apiclient.Client, profiles StudentProfiles) *StudentBridgeHandler {
	return &StudentBridgeHandler{client: client, profiles: profiles}
}

func (h *StudentBridgeHandler) studentID(c *fiber.Ctx) (int64, error) {
	p, ok := h.profiles.StudentProfile(c.UserContext())
	if !ok || p.ID <= 0 {
		return 0, apperrors.WithRedirect(apperrors.NewUnauthorized("student profile unavailable"), student.LoginPath())
	}
	return p.ID, nil
}

func (h *StudentBridgeHandler) AvailableExams(c *fiber.Ctx) error {
	id, err := h.studentID(c)
	if err != nil {
		return err
	}
	exams, err := h.client.StudentPortal().AvailableExams(c.UserContext(), id)
	return reply(c, student, exams, err)
}

func (h *StudentBridgeHandler) ParticipatedExams(c *fiber.Ctx) error {
	id, err := h.studentID(c)
	if err != nil {
		return err
	}
	exams, err := h.client.StudentPortal().ParticipatedExams(c.UserContext(), id)
	return reply(c, student, exams, err)
}

func (h *StudentBridgeHandler) RecentRecords(c *fiber.Ctx) error {
	id, err := h.studentID(c)
	if err != nil {
		return err
	}
	records, err := h.client.StudentPortal().RecentRecords(c.UserContext(), id, c.QueryInt("limit", 5))
	return reply(c, student, records, err)
}

func (h *StudentBridgeHandler) RecordAnswers(c *fiber.Ctx) error {
	id, err := h.studentID(c)
	if err != nil {
		return err
	}
	recordID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	answers, err := h.client.StudentPortal().RecordAnswers(c.UserContext(), recordID, id)
	return reply(c, student, answers, err)
}

func (h *StudentBridgeHandler) GetExam(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	exam, err := h.client.Exams().Get(c.UserContext(), id)
	return reply(c, student, exam, err)
}

// ExamQuestions strips answer keys before handing questions to a student.
func (h *StudentBridgeHandler) ExamQuestions(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	questions, err := h.client.Exams().Questions(c.UserContext(), id)
	for i := range questions {
		questions[i].QuestionCorrectAnswer = ""
		questions[i].QuestionCorrectAnswers = ""
	}
	return reply(c, student, questions, err)
}

func (h *StudentBridgeHandler) QuestionInfo(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	info, err := h.client.Answers().QuestionInfo(c.UserContext(), id)
	return reply(c, student, info, err)
}

// Submit hands in the exam for the session's student.
func (h *StudentBridgeHandler) Submit(c *fiber.Ctx) error {
	id, err := h.studentID(c)
	if err != nil {
		return err
	}
	var req dto.SubmitRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.ExamID <= 0 {
		return apperrors.NewValidationError("examId is required", nil)
	}
	if req.SubmitTime == "" {
		req.SubmitTime = time.Now().Format("2006-01-02T15:04:05")
	}
	if req.Answers == nil {
		req.Answers = map[string]any{}
	}
	return done(c, student, h.client.Exams().Submit(c.UserContext(), domain.ExamSubmission{
		ExamID:     req.ExamID,
		StudentID:  id,
		Answers:    req.Answers,
		SubmitTime: req.SubmitTime,
	}))
}
