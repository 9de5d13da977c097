package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
	// Enabled is false when no Gemini client could be built.
	Enabled bool
}

func NewAIQuizContainer(ctx context.Context, model string) *AIQuizContainer {
	provider, err := NewGeminiProvider(ctx, model)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Gemini provider disabled, generated exams use the local fallback set")
		provider = nil
	}
	service := NewService(provider)

	return &AIQuizContainer{
		Handler: NewHandler(service),
		Service: service,
		Enabled: provider != nil,
	}
}
