package questionbank

import (
	"context"
	"strings"

	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

const (
	DefaultBrowseLimit = 50
	MaxBrowseLimit     = 200
)

type Service interface {
	Browse(ctx context.Context, f Filter, limit int) ([]Entry, error)
	Subjects(ctx context.Context) ([]string, error)
	Topics(ctx context.Context, subject string) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Browse(ctx context.Context, f Filter, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultBrowseLimit
	}
	if limit > MaxBrowseLimit {
		limit = MaxBrowseLimit
	}
	f.Difficulty = strings.ToUpper(f.Difficulty)

	entries, err := s.repo.SampleActive(ctx, f, limit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to browse question bank")
		return nil, apperr.Internal("Server error", err)
	}
	return entries, nil
}

func (s *service) Subjects(ctx context.Context) ([]string, error) {
	subjects, err := s.repo.Subjects(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list subjects")
		return nil, apperr.Internal("Server error", err)
	}
	return subjects, nil
}

func (s *service) Topics(ctx context.Context, subject string) ([]string, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, apperr.Validation("subject is required")
	}
	topics, err := s.repo.Topics(ctx, subject)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list topics")
		return nil, apperr.Internal("Server error", err)
	}
	return topics, nil
}
