package questionsource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/quizee-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizee-lambda/internal/questionbank"
)

var (
	ErrInsufficientQuestions = errors.New("insufficient questions")
	ErrShortGeneration       = errors.New("generation returned fewer questions than requested")
	ErrMalformedGeneration   = errors.New("generation returned a malformed question")
)

// InsufficientQuestionsError reports how many bank questions matched.
type InsufficientQuestionsError struct {
	Available int
	Requested int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("Only %d questions available in question bank", e.Available)
}

func (e *InsufficientQuestionsError) Is(target error) bool {
	return target == ErrInsufficientQuestions
}

// BankSampler is satisfied by a question bank repository bound to the caller's transaction.
type BankSampler interface {
	SampleActive(ctx context.Context, f questionbank.Filter, limit int) ([]questionbank.Entry, error)
}

type Generator interface {
	GenerateQuestions(ctx context.Context, req aiquiz.QuestionRequest) ([]aiquiz.Question, error)
}

type Strategy interface {
	Source() Source
	Resolve(ctx context.Context, req Request) ([]Question, error)
}

type bankStrategy struct {
	bank BankSampler
}

func (s bankStrategy) Source() Source { return SourceQuestionBank }

func (s bankStrategy) Resolve(ctx context.Context, req Request) ([]Question, error) {
	entries, err := s.bank.SampleActive(ctx, questionbank.Filter{Subject: req.Subject, Topic: req.Topic}, req.Count)
	if err != nil {
		return nil, fmt.Errorf("sample question bank: %w", err)
	}

	out := make([]Question, 0, len(entries))
	for _, e := range entries {
		if q, ok := fromBankEntry(e); ok {
			out = append(out, q)
		}
	}
	if len(out) < req.Count {
		return nil, &InsufficientQuestionsError{Available: len(out), Requested: req.Count}
	}
	return out[:req.Count], nil
}

type generatedStrategy struct {
	generator Generator
	timeout   time.Duration
}

func (s generatedStrategy) Source() Source { return SourceGenerated }

func (s generatedStrategy) Resolve(ctx context.Context, req Request) ([]Question, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.generator.GenerateQuestions(ctx, aiquiz.QuestionRequest{
		ExamType: req.ExamType,
		Subject:  req.Subject,
		Topic:    req.Topic,
		Count:    req.Count,
	})
	if err != nil {
		return nil, err
	}
	if len(raw) < req.Count {
		return nil, fmt.Errorf("%w: got %d of %d", ErrShortGeneration, len(raw), req.Count)
	}

	out := make([]Question, 0, req.Count)
	for i, g := range raw[:req.Count] {
		q, ok := fromGenerated(g, req)
		if !ok {
			return nil, fmt.Errorf("%w at index %d", ErrMalformedGeneration, i)
		}
		out = append(out, q)
	}
	return out, nil
}

type fallbackStrategy struct{}

func (fallbackStrategy) Source() Source { return SourceFallback }

func (fallbackStrategy) Resolve(_ context.Context, req Request) ([]Question, error) {
	return fallbackQuestions(req.Subject, req.Count), nil
}
