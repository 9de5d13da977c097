package badge

import (
	"time"

	"github.com/google/uuid"
)

type Badge struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"badge_id"`
	Name         string       `gorm:"column:badge_name;type:text;uniqueIndex;not null" json:"badge_name"`
	Description  string       `gorm:"type:text" json:"description"`
	BadgeType    BadgeType    `gorm:"type:varchar(20);not null" json:"badge_type"`
	Points       int          `gorm:"not null;default:0" json:"points"`
	CriteriaType CriteriaType `gorm:"type:varchar(20);not null" json:"criteria_type"`
	Threshold    float64      `gorm:"not null" json:"threshold"`
	Icon         string       `gorm:"type:text" json:"icon"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

// UserBadge exists once per (user, badge). IsClaimed only ever goes from false to true.
type UserBadge struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	BadgeID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"badge_id"`
	EarnedAt  time.Time `gorm:"not null" json:"earned_at"`
	IsClaimed bool      `gorm:"not null;default:false" json:"is_claimed"`

	Badge *Badge `gorm:"foreignKey:BadgeID;constraint:OnDelete:CASCADE" json:"-"`
}

// BadgeView is a catalog entry joined with one user's state; EarnedAt is nil until awarded.
type BadgeView struct {
	Badge
	EarnedAt  *time.Time `json:"earned_at"`
	IsClaimed *bool      `json:"is_claimed"`
}

type Stats struct {
	CompletedExams int64
	TotalPoints    float64
}

func (b Badge) Satisfied(s Stats) bool {
	switch b.CriteriaType {
	case CriteriaExamsCompleted:
		return float64(s.CompletedExams) >= b.Threshold
	case CriteriaTotalPoints:
		return s.TotalPoints >= b.Threshold
	default:
		return false
	}
}

var Catalog = []Badge{
	{
		Name:         "First Steps",
		Description:  "Complete 5 exams",
		BadgeType:    BadgeTypeMilestone,
		Points:       10,
		CriteriaType: CriteriaExamsCompleted,
		Threshold:    5,
		Icon:         "🎯",
	},
	{
		Name:         "Dedicated Learner",
		Description:  "Complete 25 exams",
		BadgeType:    BadgeTypeMilestone,
		Points:       50,
		CriteriaType: CriteriaExamsCompleted,
		Threshold:    25,
		Icon:         "📚",
	},
	{
		Name:         "Point Collector",
		Description:  "Earn 500 leaderboard points",
		BadgeType:    BadgeTypeAchievement,
		Points:       75,
		CriteriaType: CriteriaTotalPoints,
		Threshold:    500,
		Icon:         "💎",
	},
	{
		Name:         "Exam Veteran",
		Description:  "Complete 100 exams",
		BadgeType:    BadgeTypeMilestone,
		Points:       200,
		CriteriaType: CriteriaExamsCompleted,
		Threshold:    100,
		Icon:         "🏆",
	},
}
