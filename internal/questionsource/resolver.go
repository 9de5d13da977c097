package questionsource

import (
	"context"
	"errors"
	"time"

	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

var ErrNoQuestions = errors.New("no question source produced questions")

// Attempt records why a strategy was skipped.
type Attempt struct {
	Source Source
	Err    error
}

type Result struct {
	Questions []Question
	Source    Source
	Attempts  []Attempt
}

type Resolver struct {
	generator Generator
	timeout   time.Duration
}

// NewResolver accepts a nil generator; generated requests then go straight to the local set.
func NewResolver(generator Generator, timeout time.Duration) *Resolver {
	return &Resolver{generator: generator, timeout: timeout}
}

func (r *Resolver) plan(bank BankSampler, req Request) []Strategy {
	if req.UseBank {
		return []Strategy{bankStrategy{bank: bank}}
	}
	var strategies []Strategy
	if r.generator != nil {
		strategies = append(strategies, generatedStrategy{generator: r.generator, timeout: r.timeout})
	}
	return append(strategies, fallbackStrategy{})
}

// Resolve tries each strategy in order and returns the first complete question set.
// On total failure the returned Result still lists every attempt.
func (r *Resolver) Resolve(ctx context.Context, bank BankSampler, req Request) (*Result, error) {
	log := config.WithContext(ctx).WithField("subject", req.Subject)
	result := &Result{}

	var lastErr error
	for _, s := range r.plan(bank, req) {
		questions, err := s.Resolve(ctx, req)
		if err == nil && len(questions) == req.Count {
			result.Questions = questions
			result.Source = s.Source()
			return result, nil
		}
		if err == nil {
			err = ErrNoQuestions
		}

		log.WithError(err).WithField("source", s.Source()).Warn("Question source attempt failed")
		result.Attempts = append(result.Attempts, Attempt{Source: s.Source(), Err: err})
		lastErr = err
	}

	if lastErr == nil {
		lastErr = ErrNoQuestions
	}
	return result, lastErr
}
