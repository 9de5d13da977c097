package leaderboard

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Init(ctx context.Context, userID uuid.UUID) error
	Credit(ctx context.Context, userID uuid.UUID, score float64) error
	Get(ctx context.Context, userID uuid.UUID) (*Entry, error)
	Top(ctx context.Context, limit int) ([]Ranking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreditPoints floors a submission score at zero.
func CreditPoints(score float64) float64 {
	return math.Max(0, score)
}

func (r *repository) Init(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Entry{UserID: userID}).Error
}

// Credit adds max(0, score) points and one exam, creating the row on first use.
func (r *repository) Credit(ctx context.Context, userID uuid.UUID, score float64) error {
	points := CreditPoints(score)
	now := time.Now()

	entry := Entry{UserID: userID, TotalPoints: points, TotalExams: 1, UpdatedAt: now}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_points": gorm.Expr("leaderboard.total_points + ?", points),
				"total_exams":  gorm.Expr("leaderboard.total_exams + 1"),
				"updated_at":   now,
			}),
		}).
		Create(&entry).Error
}

func (r *repository) Get(ctx context.Context, userID uuid.UUID) (*Entry, error) {
	var e Entry
	if err := r.db.WithContext(ctx).First(&e, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) Top(ctx context.Context, limit int) ([]Ranking, error) {
	var rankings []Ranking
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.user_id, u.name, l.total_points, l.total_exams,
		       ROW_NUMBER() OVER (ORDER BY l.total_points DESC) AS rank
		FROM leaderboard l
		JOIN users u ON u.id = l.user_id
		ORDER BY l.total_points DESC
		LIMIT ?`, limit).
		Scan(&rankings).Error
	if err != nil {
		return nil, err
	}
	return rankings, nil
}
