package domain

// QuestionType enumerates supported question kinds.
type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
	QuestionJudge    QuestionType = "judge"
	QuestionFill     QuestionType = "fill"
	QuestionEssay    QuestionType = "essay"
)

// Difficulty enumerates question difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a question-bank entry.
type Question struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Content        string       `json:"content"`
	Type           QuestionType `json:"type"`
	Difficulty     Difficulty   `json:"difficulty"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswers []string     `json:"correctAnswers,omitempty"`
	CorrectAnswer  string       `json:"correctAnswer,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	Status         int          `json:"status"`
	CreatedBy      int64        `json:"createdBy,omitempty"`
	CreatedTime    Timestamp    `json:"createdTime"`
	UpdatedTime    Timestamp    `json:"updatedTime"`
}

// QuestionRequest is the payload for creating or updating a question.
type QuestionRequest struct {
	Title          string       `json:"title"`
	Content        string       `json:"content"`
	Type           QuestionType `json:"type"`
	Difficulty     Difficulty   `json:"difficulty"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswers []string     `json:"correctAnswers,omitempty"`
	CorrectAnswer  string       `json:"correctAnswer,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	Status         int          `json:"status"`
}

// QuestionFilter narrows a question listing.
type QuestionFilter struct {
	Page       int
	Size       int
	Keyword    string
	Type       QuestionType
	Difficulty Difficulty
}

// QuestionInfo is the public view of a question without its answer.
type QuestionInfo struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty"`
	Options    []string `json:"options"`
}

// AnswerCheckRequest asks the backend to grade one answer.
type AnswerCheckRequest struct {
	QuestionID int64  `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
}

// AnswerCheckResult is the grading outcome for one answer.
type AnswerCheckResult struct {
	QuestionID    int64  `json:"questionId"`
	Correct       bool   `json:"correct"`
	QuestionType  string `json:"questionType,omitempty"`
	UserAnswer    string `json:"userAnswer,omitempty"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
	Error         string `json:"error,omitempty"`
}
