package badge

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizee-lambda/internal/exam"
	"github.com/saulo-duarte/quizee-lambda/internal/leaderboard"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListBadges(ctx context.Context) ([]Badge, error)
	ListWithUserState(ctx context.Context, userID uuid.UUID) ([]BadgeView, error)
	GetBadge(ctx context.Context, id uuid.UUID) (*Badge, error)
	Stats(ctx context.Context, userID uuid.UUID) (Stats, error)
	AwardIfAbsent(ctx context.Context, ub *UserBadge) (bool, error)
	Claim(ctx context.Context, userID, badgeID uuid.UUID) (bool, error)
	SeedCatalog(ctx context.Context, badges []Badge) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListBadges(ctx context.Context) ([]Badge, error) {
	var badges []Badge
	err := r.db.WithContext(ctx).Order("points ASC").Find(&badges).Error
	return badges, err
}

func (r *repository) ListWithUserState(ctx context.Context, userID uuid.UUID) ([]BadgeView, error) {
	var views []BadgeView
	err := r.db.WithContext(ctx).
		Table("badges b").
		Select("b.*, ub.earned_at, ub.is_claimed").
		Joins("LEFT JOIN user_badges ub ON ub.badge_id = b.id AND ub.user_id = ?", userID).
		Order("b.points ASC").
		Scan(&views).Error
	return views, err
}

func (r *repository) GetBadge(ctx context.Context, id uuid.UUID) (*Badge, error) {
	var b Badge
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Stats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	var s Stats
	err := r.db.WithContext(ctx).
		Model(&exam.QuizSession{}).
		Where("user_id = ? AND status = ?", userID, exam.SessionStatusCompleted).
		Count(&s.CompletedExams).Error
	if err != nil {
		return s, err
	}

	entry, err := leaderboard.NewRepository(r.db).Get(ctx, userID)
	if err != nil {
		return s, err
	}
	if entry != nil {
		s.TotalPoints = entry.TotalPoints
	}
	return s, nil
}

// AwardIfAbsent reports whether a new row was inserted.
func (r *repository) AwardIfAbsent(ctx context.Context, ub *UserBadge) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(ub)
	return res.RowsAffected == 1, res.Error
}

func (r *repository) Claim(ctx context.Context, userID, badgeID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&UserBadge{}).
		Where("user_id = ? AND badge_id = ? AND is_claimed = ?", userID, badgeID, false).
		Update("is_claimed", true)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) SeedCatalog(ctx context.Context, badges []Badge) error {
	if len(badges) == 0 {
		return nil
	}
	rows := append([]Badge(nil), badges...)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "badge_name"}}, DoNothing: true}).
		Create(&rows).Error
}
