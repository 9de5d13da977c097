package leaderboard

import (
	"context"

	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

type Service interface {
	Top(ctx context.Context, limit int) ([]Ranking, error)
	Invalidate(ctx context.Context)
}

type service struct {
	repo  Repository
	cache Cache
}

func NewService(repo Repository, cache Cache) Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &service{repo: repo, cache: cache}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func (s *service) Top(ctx context.Context, limit int) ([]Ranking, error) {
	log := config.WithContext(ctx)
	limit = clampLimit(limit)

	rankings, ok, err := s.cache.Get(ctx, limit)
	if err != nil {
		log.WithError(err).Warn("Leaderboard cache read failed, using database")
	}
	if ok {
		return rankings, nil
	}

	rankings, err = s.repo.Top(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Failed to load leaderboard")
		return nil, apperr.Internal("Server error", err)
	}

	if err := s.cache.Set(ctx, limit, rankings); err != nil {
		log.WithError(err).Warn("Leaderboard cache write failed")
	}
	return rankings, nil
}

// Invalidate drops cached pages after a committed submission. Failures are logged only.
func (s *service) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Leaderboard cache invalidation failed")
	}
}
