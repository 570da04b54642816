package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/exam-portal/internal/api/http/handlers"
	"github.com/spec-kit/exam-portal/internal/auth"
	"github.com/spec-kit/exam-portal/internal/domain"
	"github.com/spec-kit/exam-portal/internal/routes"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Navigation        *handlers.NavigationHandler
	Session           *handlers.SessionHandler
	AdminBridge       *handlers.AdminBridgeHandler
	StudentBridge     *handlers.StudentBridgeHandler
	Shell             *handlers.ShellHandler
	SessionMiddleware *auth.SessionMiddleware
	Routes            *routes.Table
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/stats", cfg.Health.Stats)

	for _, route := range cfg.Routes.Routes() {
		app.Get(route.Path, cfg.Navigation.Guard)
	}
	app.Get("/navigate", cfg.Navigation.Navigate)

	sessionGroup := app.Group("/session")
	sessionGroup.Get("", cfg.Session.Current)
	sessionGroup.Post("/admin/login", cfg.Session.AdminLogin)
	sessionGroup.Post("/student/login", cfg.Session.StudentLogin)
	sessionGroup.Post("/logout", cfg.Session.Logout)

	if cfg.Shell != nil {
		shellGroup := app.Group("/shell")
		shellGroup.Post("/navigation", cfg.Shell.Navigation)
		shellGroup.Post("/window-open", cfg.Shell.WindowOpen)
	}

	bridge := app.Group("/bridge", cfg.SessionMiddleware.Handle)
	bridge.Get("/auth/check-username", cfg.AdminBridge.CheckUsername)
	bridge.Get("/auth/check-email", cfg.AdminBridge.CheckEmail)

	// The admin guard is mounted on the bare /bridge prefix, so everything
	// that must bypass it is registered first.
	registerStudentBridge(bridge.Group("/student", auth.RequireRole(domain.RoleStudent)), cfg.StudentBridge)
	registerAdminBridge(bridge.Group("", auth.RequireRole(domain.RoleAdmin)), cfg.AdminBridge)
}

// Static segments are registered before their ":id" siblings.
func registerAdminBridge(r fiber.Router, h *handlers.AdminBridgeHandler) {
	r.Get("/questions", h.ListQuestions)
	r.Post("/questions", h.CreateQuestion)
	r.Get("/questions/stats", h.QuestionStats)
	r.Get("/questions/export", h.ExportQuestions)
	r.Get("/questions/template", h.QuestionTemplate)
	r.Get("/questions/:id", h.GetQuestion)
	r.Put("/questions/:id", h.UpdateQuestion)
	r.Delete("/questions/:id", h.DeleteQuestion)

	r.Get("/exams", h.ListExams)
	r.Post("/exams", h.CreateExam)
	r.Get("/exams/active", h.ActiveExams)
	r.Get("/exams/upcoming", h.UpcomingExams)
	r.Get("/exams/records", h.ListRecords)
	r.Put("/exams/records/:id/score", h.UpdateRecordScore)
	r.Post("/exams/records/:id/reset", h.ResetRecord)
	r.Delete("/exams/records/:id", h.DeleteRecord)
	r.Get("/exams/:id", h.GetExam)
	r.Put("/exams/:id", h.UpdateExam)
	r.Delete("/exams/:id", h.DeleteExam)
	r.Put("/exams/:id/status", h.UpdateExamStatus)
	r.Get("/exams/:id/questions", h.ExamQuestions)
	r.Post("/exams/:id/questions", h.AddExamQuestion)
	r.Delete("/exams/:id/questions/:questionId", h.RemoveExamQuestion)
	r.Put("/exams/:id/questions/:questionId/score", h.UpdateExamQuestionScore)
	r.Get("/exams/:id/statistics", h.ExamStatistics)
	r.Get("/exams/:id/records", h.ExamRecords)

	r.Get("/students", h.ListStudents)
	r.Get("/students/search", h.SearchStudents)
	r.Get("/students/statistics", h.StudentStatistics)
	r.Get("/students/classes", h.StudentClasses)
	r.Get("/students/majors", h.StudentMajors)
	r.Get("/students/grades", h.StudentGrades)
	r.Get("/students/status/:status", h.StudentsByStatus)
	r.Get("/students/class/:class", h.StudentsByClass)
	r.Get("/students/major/:major", h.StudentsByMajor)
	r.Delete("/students/batch", h.DeleteStudents)
	r.Get("/students/:id", h.GetStudent)
	r.Put("/students/:id/status", h.UpdateStudentStatus)
	r.Delete("/students/:id", h.DeleteStudent)

	r.Get("/users", h.ListUsers)
	r.Get("/users/search", h.SearchUsers)
	r.Get("/users/statistics", h.UserStatistics)
	r.Get("/users/recent-active", h.RecentlyActiveUsers)
	r.Get("/users/never-logged-in", h.NeverLoggedInUsers)
	r.Get("/users/created-between", h.UsersCreatedBetween)
	r.Get("/users/status/:status", h.UsersByStatus)
	r.Get("/users/:id", h.GetUser)
	r.Put("/users/:id/status", h.UpdateUserStatus)

	r.Get("/dashboard/stats", h.DashboardStats)
	r.Get("/dashboard/user-stats", h.DashboardUserStats)
	r.Get("/dashboard/exam-stats", h.DashboardExamStats)
	r.Get("/dashboard/question-stats", h.DashboardQuestionStats)
	r.Get("/dashboard/recent-activities", h.RecentActivities)

	r.Post("/answers/check", h.CheckAnswer)
	r.Post("/answers/check-batch", h.CheckAnswers)
	r.Get("/answers/questions/:id", h.QuestionInfo)
}

func registerStudentBridge(r fiber.Router, h *handlers.StudentBridgeHandler) {
	r.Get("/exams/available", h.AvailableExams)
	r.Get("/exams/participated", h.ParticipatedExams)
	r.Post("/exams/submit", h.Submit)
	r.Get("/exams/:id", h.GetExam)
	r.Get("/exams/:id/questions", h.ExamQuestions)
	r.Get("/questions/:id", h.QuestionInfo)
	r.Get("/records/recent", h.RecentRecords)
	r.Get("/records/:id/answers", h.RecordAnswers)
}
