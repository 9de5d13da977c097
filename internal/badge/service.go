package badge

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

var ErrNothingToClaim = apperr.NotFound("Badge not found or already claimed")

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]BadgeView, error)
	Evaluate(ctx context.Context, userID uuid.UUID) ([]Badge, error)
	Claim(ctx context.Context, userID uuid.UUID, badgeID string) (*Badge, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// List returns the catalog with the caller's state, then evaluates awards.
// Newly earned badges show up on the next fetch.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]BadgeView, error) {
	views, err := s.repo.ListWithUserState(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}

	if _, err := s.Evaluate(ctx, userID); err != nil {
		config.WithContext(ctx).WithError(err).WithField("user_id", userID).Warn("Badge evaluation failed")
	}

	if views == nil {
		views = []BadgeView{}
	}
	return views, nil
}

// Evaluate awards every satisfied badge the user does not hold yet. Running it again is a no-op.
func (s *service) Evaluate(ctx context.Context, userID uuid.UUID) ([]Badge, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	badges, err := s.repo.ListBadges(ctx)
	if err != nil {
		return nil, err
	}

	var awarded []Badge
	for _, b := range badges {
		if !b.Satisfied(stats) {
			continue
		}
		inserted, err := s.repo.AwardIfAbsent(ctx, &UserBadge{
			UserID:   userID,
			BadgeID:  b.ID,
			EarnedAt: s.now(),
		})
		if err != nil {
			return awarded, err
		}
		if inserted {
			log.WithField("badge_id", b.ID).Info("Badge awarded")
			awarded = append(awarded, b)
		}
	}
	return awarded, nil
}

func (s *service) Claim(ctx context.Context, userID uuid.UUID, badgeID string) (*Badge, error) {
	id, err := uuid.Parse(badgeID)
	if err != nil {
		return nil, ErrNothingToClaim
	}

	claimed, err := s.repo.Claim(ctx, userID, id)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if !claimed {
		return nil, ErrNothingToClaim
	}

	b, err := s.repo.GetBadge(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if b == nil {
		return nil, ErrNothingToClaim
	}

	config.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id":  userID,
		"badge_id": id,
	}).Info("Badge claimed")
	return b, nil
}
