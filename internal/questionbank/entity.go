package questionbank

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a reusable question shared by many exams. Exams copy entries, they never move them.
type Entry struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"bank_question_id"`
	Subject       string    `gorm:"type:text;not null;index:idx_bank_subject_topic" json:"subject"`
	Topic         *string   `gorm:"type:text;index:idx_bank_subject_topic" json:"topic,omitempty"`
	Difficulty    string    `gorm:"type:varchar(10);not null;default:MEDIUM" json:"difficulty"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	OptionA       string    `gorm:"type:text;not null" json:"option_a"`
	OptionB       string    `gorm:"type:text;not null" json:"option_b"`
	OptionC       string    `gorm:"type:text;not null" json:"option_c"`
	OptionD       string    `gorm:"type:text;not null" json:"option_d"`
	CorrectAnswer string    `gorm:"type:char(1);not null" json:"correct_answer"`
	Explanation   string    `gorm:"type:text" json:"explanation"`
	ExamType      string    `gorm:"type:varchar(50)" json:"exam_type,omitempty"`
	Year          *int      `json:"year,omitempty"`
	Source        string    `gorm:"type:text" json:"source,omitempty"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string {
	return "question_bank"
}

type Filter struct {
	Subject    string
	Topic      string
	Difficulty string
	ExamType   string
}
