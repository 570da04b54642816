package domain

// Exam status codes.
const (
	ExamDisabled = 0
	ExamEnabled  = 1
	ExamFinished = 2
)

// Exam record status codes.
const (
	RecordNotStarted = 0
	RecordInProgress = 1
	RecordSubmitted  = 2
	RecordTimedOut   = 3
)

// Exam is a scheduled examination.
type Exam struct {
	ID            int64     `json:"id,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	StartTime     Timestamp `json:"startTime"`
	EndTime       Timestamp `json:"endTime"`
	Duration      int       `json:"duration"`
	TotalScore    float64   `json:"totalScore"`
	PassScore     float64   `json:"passScore"`
	QuestionCount int       `json:"questionCount"`
	Status        int       `json:"status"`
	CreatedBy     int64     `json:"createdBy,omitempty"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
}

// ExamFilter narrows an exam listing.
type ExamFilter struct {
	PageQuery
	Title     string
	Status    *int
	CreatedBy *int64
}

// ExamQuestion is a question attached to an exam.
type ExamQuestion struct {
	ID                     int64     `json:"id"`
	ExamID                 int64     `json:"examId"`
	QuestionID             int64     `json:"questionId"`
	QuestionOrder          int       `json:"questionOrder"`
	Score                  float64   `json:"score"`
	CreatedAt              Timestamp `json:"createdAt"`
	QuestionTitle          string    `json:"questionTitle"`
	QuestionContent        string    `json:"questionContent"`
	QuestionType           string    `json:"questionType"`
	QuestionDifficulty     string    `json:"questionDifficulty"`
	QuestionOptions        string    `json:"questionOptions"`
	QuestionCorrectAnswers string    `json:"questionCorrectAnswers,omitempty"`
	QuestionCorrectAnswer  string    `json:"questionCorrectAnswer,omitempty"`
	QuestionTags           string    `json:"questionTags,omitempty"`
}

// ExamRecord is one student's attempt at an exam.
type ExamRecord struct {
	ID              int64     `json:"id"`
	ExamID          int64     `json:"examId"`
	StudentID       int64     `json:"studentId"`
	StudentNumber   string    `json:"studentNumber"`
	StudentName     string    `json:"studentName"`
	StartTime       Timestamp `json:"startTime"`
	EndTime         Timestamp `json:"endTime"`
	SubmitTime      Timestamp `json:"submitTime"`
	TotalScore      float64   `json:"totalScore"`
	Score           float64   `json:"score"`
	CorrectCount    int       `json:"correctCount"`
	WrongCount      int       `json:"wrongCount"`
	UnansweredCount int       `json:"unansweredCount"`
	Status          int       `json:"status"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       Timestamp `json:"createdAt"`
	UpdatedAt       Timestamp `json:"updatedAt"`
}

// RecordFilter narrows an exam record listing.
type RecordFilter struct {
	PageQuery
	ExamID      *int64
	StudentName string
	Status      *int
}

// StudentAnswer is a graded answer within an exam record.
type StudentAnswer struct {
	ID            int64     `json:"id"`
	ExamRecordID  int64     `json:"examRecordId"`
	ExamID        int64     `json:"examId"`
	StudentID     int64     `json:"studentId"`
	QuestionID    int64     `json:"questionId"`
	StudentAnswer string    `json:"studentAnswer"`
	CorrectAnswer string    `json:"correctAnswer"`
	IsCorrect     *bool     `json:"isCorrect"`
	AnswerTime    Timestamp `json:"answerTime"`
}

// ExamSubmission is the payload a student sends when finishing an exam.
type ExamSubmission struct {
	ExamID     int64          `json:"examId"`
	StudentID  int64          `json:"studentId"`
	Answers    map[string]any `json:"answers"`
	SubmitTime string         `json:"submitTime"`
}
