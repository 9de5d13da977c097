package exam

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type MarkingScheme struct {
	Correct    float64 `json:"correct"`
	Incorrect  float64 `json:"incorrect"`
	Unanswered float64 `json:"unanswered"`
}

var DefaultMarkingScheme = MarkingScheme{Correct: 4, Incorrect: -1, Unanswered: 0}

const DefaultDurationMinutes = 60

// Exam is owned by its creator and never changes after its questions are attached, except Status.
type Exam struct {
	ID              uuid.UUID                         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"exam_id"`
	UserID          uuid.UUID                         `gorm:"type:uuid;not null;index" json:"user_id"`
	ExamType        ExamType                          `gorm:"type:varchar(20);not null" json:"exam_type"`
	ExamName        string                            `gorm:"type:text;not null" json:"exam_name"`
	Subject         string                            `gorm:"type:text;not null" json:"subject"`
	Topic           *string                           `gorm:"type:text" json:"topic"`
	TotalQuestions  int                               `gorm:"not null" json:"total_questions"`
	DurationMinutes int                               `gorm:"not null;default:60" json:"duration_minutes"`
	MarkingScheme   datatypes.JSONType[MarkingScheme] `gorm:"type:jsonb;not null" json:"marking_scheme"`
	Status          ExamStatus                        `gorm:"type:varchar(20);not null;default:ACTIVE" json:"status"`
	CreatedAt       time.Time                         `gorm:"autoCreateTime" json:"created_at"`
}

type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"question_id"`
	ExamID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"exam_id"`
	QuestionText  string         `gorm:"type:text;not null" json:"question_text"`
	OptionA       string         `gorm:"type:text;not null" json:"option_a"`
	OptionB       string         `gorm:"type:text;not null" json:"option_b"`
	OptionC       string         `gorm:"type:text;not null" json:"option_c"`
	OptionD       string         `gorm:"type:text;not null" json:"option_d"`
	CorrectAnswer string         `gorm:"type:char(1);not null" json:"correct_answer"`
	Explanation   string         `gorm:"type:text" json:"explanation"`
	Difficulty    string         `gorm:"type:varchar(10);not null;default:MEDIUM" json:"difficulty"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	Position      int            `gorm:"not null" json:"position"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`

	Exam *Exam `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"-"`
}

type QuizSession struct {
	ID         uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"session_id"`
	UserID     uuid.UUID     `gorm:"type:uuid;not null;index:idx_session_user_status" json:"user_id"`
	ExamID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"exam_id"`
	Status     SessionStatus `gorm:"type:varchar(20);not null;index:idx_session_user_status" json:"status"`
	TotalScore float64       `gorm:"not null;default:0" json:"total_score"`
	StartTime  time.Time     `gorm:"not null" json:"start_time"`
	EndTime    *time.Time    `json:"end_time"`

	Exam *Exam `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserAnswer is an append-only audit row; SelectedAnswer is nil when unanswered and is stored
// verbatim, so any non-empty selection fits.
type UserAnswer struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"answer_id"`
	SessionID        uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	QuestionID       uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	SelectedAnswer   *string   `gorm:"type:text" json:"selected_answer"`
	IsCorrect        bool      `gorm:"not null" json:"is_correct"`
	TimeTakenSeconds int       `gorm:"not null;default:0" json:"time_taken_seconds"`

	Session  *QuizSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	Question *Question    `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}
