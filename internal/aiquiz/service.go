package aiquiz

import (
	"context"
	"errors"
)

var ErrProviderUnavailable = errors.New("question generation provider is not configured")

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error)
}

type service struct {
	provider Provider
}

// NewService accepts a nil provider; generation then fails with ErrProviderUnavailable.
func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error) {
	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}
	return s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
}
