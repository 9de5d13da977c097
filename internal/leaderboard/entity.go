package leaderboard

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a user's cumulative standing. It only ever grows through Credit.
type Entry struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	TotalPoints float64   `gorm:"not null;default:0;index" json:"total_points"`
	TotalExams  int       `gorm:"not null;default:0" json:"total_exams"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string {
	return "leaderboard"
}

type Ranking struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	TotalPoints float64   `json:"total_points"`
	TotalExams  int       `json:"total_exams"`
	Rank        int       `json:"rank"`
}
