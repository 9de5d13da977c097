package exam

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizee-lambda/internal/questionsource"
)

type GenerateExamRequest struct {
	ExamType        string         `json:"examType" validate:"required"`
	Subject         string         `json:"subject" validate:"required"`
	Topic           string         `json:"topic"`
	NumQuestions    int            `json:"numQuestions" validate:"required,min=1,max=200"`
	DurationMinutes int            `json:"durationMinutes" validate:"omitempty,min=1,max=600"`
	MarkingScheme   *MarkingScheme `json:"markingScheme"`
	UseQuestionBank *bool          `json:"useQuestionBank"`
}

type BuildExamResult struct {
	ExamID    uuid.UUID             `json:"exam_id"`
	Exam      *Exam                 `json:"exam"`
	Questions []*Question           `json:"questions"`
	Source    questionsource.Source `json:"source"`
}

type ExamWithQuestionsDTO struct {
	Exam      *Exam       `json:"exam"`
	Questions []*Question `json:"questions"`
}

type ExamSummary struct {
	Exam
	QuestionCount int `json:"question_count"`
}

type AnswerInput struct {
	QuestionID     string  `json:"questionId"`
	SelectedAnswer *string `json:"selectedAnswer"`
	TimeTaken      float64 `json:"timeTaken"`
}

type Analytics struct {
	Correct    int `json:"correct"`
	Incorrect  int `json:"incorrect"`
	Unanswered int `json:"unanswered"`
}

type DetailedResult struct {
	QuestionID    uuid.UUID `json:"questionId"`
	QuestionText  string    `json:"questionText"`
	YourAnswer    *string   `json:"yourAnswer"`
	CorrectAnswer string    `json:"correctAnswer"`
	IsCorrect     bool      `json:"isCorrect"`
	Explanation   string    `json:"explanation"`
	TimeTaken     int       `json:"timeTaken"`
}

type SubmissionResult struct {
	SessionID       uuid.UUID        `json:"session_id"`
	Score           float64          `json:"score"`
	Analytics       Analytics        `json:"analytics"`
	Percentage      string           `json:"percentage"`
	DetailedResults []DetailedResult `json:"detailedResults"`
}
