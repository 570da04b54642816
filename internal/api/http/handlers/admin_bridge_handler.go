package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/exam-portal/internal/api/dto"
	"github.com/spec-kit/exam-portal/internal/apiclient"
	"github.com/spec-kit/exam-portal/internal/domain"
	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

const admin = domain.RoleAdmin

// AdminBridgeHandler forwards admin console calls to the backend with the
// admin credential.
type AdminBridgeHandler struct {
	client *apiclient.Client
}

// NewAdminBridgeHandler constructs handler. client must authorize with the
// admin token.
func NewAdminBridgeHandler(client *apiclient.Client) *AdminBridgeHandler {
	return &AdminBridgeHandler{client: client}
}

// Questions

func (h *AdminBridgeHandler) ListQuestions(c *fiber.Ctx) error {
	page, err := h.client.Questions().List(c.UserContext(), domain.QuestionFilter{
		Page:       c.QueryInt("page", 0),
		Size:       c.QueryInt("size", 10),
		Keyword:    c.Query("keyword"),
		Type:       domain.QuestionType(c.Query("type")),
		Difficulty: domain.Difficulty(c.Query("difficulty")),
	})
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	q, err := h.client.Questions().Get(c.UserContext(), id)
	return reply(c, admin, q, err)
}

func (h *AdminBridgeHandler) CreateQuestion(c *fiber.Ctx) error {
	var req domain.QuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Title == "" || req.Type == "" {
		return apperrors.NewValidationError("title and type are required", nil)
	}
	q, err := h.client.Questions().Create(c.UserContext(), req)
	if err != nil {
		return bridgeError(admin, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": q})
}

func (h *AdminBridgeHandler) UpdateQuestion(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req domain.QuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	q, err := h.client.Questions().Update(c.UserContext(), id, req)
	return reply(c, admin, q, err)
}

func (h *AdminBridgeHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	return done(c, admin, h.client.Questions().Delete(c.UserContext(), id))
}

func (h *AdminBridgeHandler) QuestionStats(c *fiber.Ctx) error {
	stats, err := h.client.Questions().Stats(c.UserContext())
	return reply(c, admin, stats, err)
}

func (h *AdminBridgeHandler) ExportQuestions(c *fiber.Ctx) error {
	d, err := h.client.Questions().Export(c.UserContext(), domain.QuestionFilter{
		Keyword:    c.Query("keyword"),
		Type:       domain.QuestionType(c.Query("type")),
		Difficulty: domain.Difficulty(c.Query("difficulty")),
	})
	return sendDownload(c, admin, d, err)
}

func (h *AdminBridgeHandler) QuestionTemplate(c *fiber.Ctx) error {
	d, err := h.client.Questions().Template(c.UserContext())
	return sendDownload(c, admin, d, err)
}

// Exams

func (h *AdminBridgeHandler) ListExams(c *fiber.Ctx) error {
	status, err := optionalInt(c, "status")
	if err != nil {
		return err
	}
	createdBy, err := optionalInt64(c, "createdBy")
	if err != nil {
		return err
	}
	page, err := h.client.Exams().List(c.UserContext(), domain.ExamFilter{
		PageQuery: pageQuery(c),
		Title:     c.Query("title"),
		Status:    status,
		CreatedBy: createdBy,
	})
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) GetExam(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	exam, err := h.client.Exams().Get(c.UserContext(), id)
	return reply(c, admin, exam, err)
}

func (h *AdminBridgeHandler) CreateExam(c *fiber.Ctx) error {
	var exam domain.Exam
	if err := parseBody(c, &exam); err != nil {
		return err
	}
	if exam.Title == "" {
		return apperrors.NewValidationError("title is required", nil)
	}
	created, err := h.client.Exams().Create(c.UserContext(), exam)
	if err != nil {
		return bridgeError(admin, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (h *AdminBridgeHandler) UpdateExam(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var exam domain.Exam
	if err := parseBody(c, &exam); err != nil {
		return err
	}
	updated, err := h.client.Exams().Update(c.UserContext(), id, exam)
	return reply(c, admin, updated, err)
}

func (h *AdminBridgeHandler) DeleteExam(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	return done(c, admin, h.client.Exams().Delete(c.UserContext(), id))
}

func (h *AdminBridgeHandler) UpdateExamStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.StatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Status == nil {
		return apperrors.NewValidationError("status is required", nil)
	}
	return done(c, admin, h.client.Exams().UpdateStatus(c.UserContext(), id, *req.Status))
}

func (h *AdminBridgeHandler) ExamQuestions(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	questions, err := h.client.Exams().Questions(c.UserContext(), id)
	return reply(c, admin, questions, err)
}

func (h *AdminBridgeHandler) AddExamQuestion(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.AddExamQuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.QuestionID <= 0 {
		return apperrors.NewValidationError("questionId is required", nil)
	}
	return done(c, admin, h.client.Exams().AddQuestion(c.UserContext(), id, req.QuestionID, req.Order, req.Score))
}

func (h *AdminBridgeHandler) RemoveExamQuestion(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	questionID, err := idParam(c, "questionId")
	if err != nil {
		return err
	}
	return done(c, admin, h.client.Exams().RemoveQuestion(c.UserContext(), id, questionID))
}

func (h *AdminBridgeHandler) UpdateExamQuestionScore(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	questionID, err := idParam(c, "questionId")
	if err != nil {
		return err
	}
	score, err := scoreBody(c)
	if err != nil {
		return err
	}
	return done(c, admin, h.client.Exams().UpdateQuestionScore(c.UserContext(), id, questionID, score))
}

func (h *AdminBridgeHandler) ExamStatistics(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	stats, err := h.client.Exams().Statistics(c.UserContext(), id)
	return reply(c, admin, stats, err)
}

func (h *AdminBridgeHandler) ExamRecords(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	records, err := h.client.Exams().ExamRecords(c.UserContext(), id)
	return reply(c, admin, records, err)
}

func (h *AdminBridgeHandler) ActiveExams(c *fiber.Ctx) error {
	exams, err := h.client.Exams().Active(c.UserContext())
	return reply(c, admin, exams, err)
}

func (h *AdminBridgeHandler) UpcomingExams(c *fiber.Ctx) error {
	exams, err := h.client.Exams().Upcoming(c.UserContext())
	return reply(c, admin, exams, err)
}

// Records

func (h *AdminBridgeHandler) ListRecords(c *fiber.Ctx) error {
	examID, err := optionalInt64(c, "examId")
	if err != nil {
		return err
	}
	status, err := optionalInt(c, "status")
	if err != nil {
		return err
	}
	page, err := h.client.Exams().Records(c.UserContext(), domain.RecordFilter{
		PageQuery:   pageQuery(c),
		ExamID:      examID,
		StudentName: c.Query("studentName"),
		Status:      status,
	})
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) UpdateRecordScore(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	score, err := scoreBody(c)
	if err != nil {
		return err
	}
	return done(c, admin, h.client.Exams().UpdateRecordScore(c.UserContext(), id, score))
}

func (h *AdminBridgeHandler) ResetRecord(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	return done(c, admin, h.client.Exams().ResetRecord(c.UserContext(), id))
}

func (h *AdminBridgeHandler) DeleteRecord(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	return done(c, admin, h.client.Exams().DeleteRecord(c.UserContext(), id))
}

// Students

func (h *AdminBridgeHandler) ListStudents(c *fiber.Ctx) error {
	page, err := h.client.Students().List(c.UserContext(), pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) SearchStudents(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if keyword == "" {
		return apperrors.NewValidationError("keyword is required", nil)
	}
	page, err := h.client.Students().Search(c.UserContext(), keyword, pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) StudentsByStatus(c *fiber.Ctx) error {
	status, err := intParam(c, "status")
	if err != nil {
		return err
	}
	page, err := h.client.Students().ByStatus(c.UserContext(), status, pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) StudentsByClass(c *fiber.Ctx) error {
	page, err := h.client.Students().ByClass(c.UserContext(), c.Params("class"), pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) StudentsByMajor(c *fiber.Ctx) error {
	page, err := h.client.Students().ByMajor(c.UserContext(), c.Params("major"), pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) GetStudent(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	s, err := h.client.Students().Get(c.UserContext(), id)
	return reply(c, admin, s, err)
}

func (h *AdminBridgeHandler) UpdateStudentStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.StatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Status == nil {
		return apperrors.NewValidationError("status is required", nil)
	}
	s, err := h.client.Students().UpdateStatus(c.UserContext(), id, *req.Status)
	return reply(c, admin, s, err)
}

func (h *AdminBridgeHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	return done(c, admin, h.client.Students().Delete(c.UserContext(), id))
}

func (h *AdminBridgeHandler) DeleteStudents(c *fiber.Ctx) error {
	var ids []int64
	if err := parseBody(c, &ids); err != nil {
		return err
	}
	if len(ids) == 0 {
		return apperrors.NewValidationError("at least one id is required", nil)
	}
	return done(c, admin, h.client.Students().DeleteBatch(c.UserContext(), ids))
}

func (h *AdminBridgeHandler) StudentStatistics(c *fiber.Ctx) error {
	stats, err := h.client.Students().Statistics(c.UserContext())
	return reply(c, admin, stats, err)
}

func (h *AdminBridgeHandler) StudentClasses(c *fiber.Ctx) error {
	v, err := h.client.Students().Classes(c.UserContext())
	return reply(c, admin, v, err)
}

func (h *AdminBridgeHandler) StudentMajors(c *fiber.Ctx) error {
	v, err := h.client.Students().Majors(c.UserContext())
	return reply(c, admin, v, err)
}

func (h *AdminBridgeHandler) StudentGrades(c *fiber.Ctx) error {
	v, err := h.client.Students().Grades(c.UserContext())
	return reply(c, admin, v, err)
}

// Users

func (h *AdminBridgeHandler) ListUsers(c *fiber.Ctx) error {
	page, err := h.client.Users().List(c.UserContext(), pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) SearchUsers(c *fiber.Ctx) error {
	page, err := h.client.Users().Search(c.UserContext(), c.Query("keyword"), pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) UsersByStatus(c *fiber.Ctx) error {
	status, err := intParam(c, "status")
	if err != nil {
		return err
	}
	page, err := h.client.Users().ByStatus(c.UserContext(), status, pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) UserStatistics(c *fiber.Ctx) error {
	stats, err := h.client.Users().Statistics(c.UserContext())
	return reply(c, admin, stats, err)
}

func (h *AdminBridgeHandler) GetUser(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	u, err := h.client.Users().Get(c.UserContext(), id)
	return reply(c, admin, u, err)
}

// UpdateUserStatus takes the status from the query string, like the backend.
func (h *AdminBridgeHandler) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	status, err := optionalInt(c, "status")
	if err != nil {
		return err
	}
	if status == nil {
		return apperrors.NewValidationError("status is required", nil)
	}
	u, err := h.client.Users().UpdateStatus(c.UserContext(), id, *status)
	return reply(c, admin, u, err)
}

func (h *AdminBridgeHandler) RecentlyActiveUsers(c *fiber.Ctx) error {
	page, err := h.client.Users().RecentActive(c.UserContext(), c.QueryInt("days", 7), pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) NeverLoggedInUsers(c *fiber.Ctx) error {
	page, err := h.client.Users().NeverLoggedIn(c.UserContext(), pageQuery(c))
	return reply(c, admin, page, err)
}

func (h *AdminBridgeHandler) UsersCreatedBetween(c *fiber.Ctx) error {
	start, err := timeQuery(c, "startTime")
	if err != nil {
		return err
	}
	end, err := timeQuery(c, "endTime")
	if err != nil {
		return err
	}
	if end.Before(start) {
		return apperrors.NewValidationError("endTime precedes startTime", nil)
	}
	page, err := h.client.Users().CreatedBetween(c.UserContext(), start, end, pageQuery(c))
	return reply(c, admin, page, err)
}

// Dashboard

func (h *AdminBridgeHandler) DashboardStats(c *fiber.Ctx) error {
	v, err := h.client.Dashboard().Stats(c.UserContext())
	return reply(c, admin, v, err)
}

func (h *AdminBridgeHandler) DashboardUserStats(c *fiber.Ctx) error {
	v, err := h.client.Dashboard().UserStats(c.UserContext())
	return reply(c, admin, v, err)
}

func (h *AdminBridgeHandler) DashboardExamStats(c *fiber.Ctx) error {
	v, err := h.client.Dashboard().ExamStats(c.UserContext())
	return reply(c, admin, v, err)
}

func (h *AdminBridgeHandler) DashboardQuestionStats(c *fiber.Ctx) error {
	v, err := h.client.Dashboard().QuestionStats(c.UserContext())
	return reply(c, admin, v, err)
}

func (h *AdminBridgeHandler) RecentActivities(c *fiber.Ctx) error {
	v, err := h.client.Dashboard().RecentActivities(c.UserContext())
	return reply(c, admin, v, err)
}

// Answers

func (h *AdminBridgeHandler) CheckAnswer(c *fiber.Ctx) error {
	var req domain.AnswerCheckRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	v, err := h.client.Answers().Check(c.UserContext(), req)
	return reply(c, admin, v, err)
}

func (h *AdminBridgeHandler) CheckAnswers(c *fiber.Ctx) error {
	var req dto.BatchCheckRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	v, err := h.client.Answers().CheckBatch(c.UserContext(), req.Answers)
	return reply(c, admin, v, err)
}

func (h *AdminBridgeHandler) QuestionInfo(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	v, err := h.client.Answers().QuestionInfo(c.UserContext(), id)
	return reply(c, admin, v, err)
}

// Auth lookups

func (h *AdminBridgeHandler) CheckUsername(c *fiber.Ctx) error {
	exists, err := h.client.Auth().CheckUsername(c.UserContext(), c.Query("username"))
	return reply(c, admin, fiber.Map{"exists": exists}, err)
}

func (h *AdminBridgeHandler) CheckEmail(c *fiber.Ctx) error {
	exists, err := h.client.Auth().CheckEmail(c.UserContext(), c.Query("email"))
	return reply(c, admin, fiber.Map{"exists": exists}, err)
}

func scoreBody(c *fiber.Ctx) (float64, error) {
	var req dto.ScoreRequest
	if err := parseBody(c, &req); err != nil {
		return 0, err
	}
	if req.Score == nil || *req.Score < 0 {
		return 0, apperrors.NewValidationError("score must be a non-negative number", nil)
	}
	return *req.Score, nil
}

func timeQuery(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("invalid "+name, map[string]any{name: raw})
}
