package questionbank

import (
	"context"
	"errors"
	"testing"

	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
)

type fakeRepo struct {
	gotFilter Filter
	gotLimit  int
	err       error
}

func (f *fakeRepo) SampleActive(_ context.Context, flt Filter, limit int) ([]Entry, error) {
	f.gotFilter, f.gotLimit = flt, limit
	return nil, f.err
}

func (f *fakeRepo) Subjects(context.Context) ([]string, error) {
	return []string{"Biology", "Physics"}, f.err
}

func (f *fakeRepo) Topics(context.Context, string) ([]string, error) {
	return []string{"Cells"}, f.err
}

func TestBrowseClampsLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultBrowseLimit},
		{-4, DefaultBrowseLimit},
		{10, 10},
		{5000, MaxBrowseLimit},
	}

	for _, tc := range tests {
		repo := &fakeRepo{}
		if _, err := NewService(repo).Browse(context.Background(), Filter{Difficulty: "hard"}, tc.in); err != nil {
			t.Fatalf("Browse: %v", err)
		}
		if repo.gotLimit != tc.want {
			t.Errorf("limit %d -> %d, want %d", tc.in, repo.gotLimit, tc.want)
		}
		if repo.gotFilter.Difficulty != "HARD" {
			t.Errorf("difficulty = %q, want HARD", repo.gotFilter.Difficulty)
		}
	}
}

func TestTopicsRequiresSubject(t *testing.T) {
	_, err := NewService(&fakeRepo{}).Topics(context.Background(), "  ")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRepositoryFailureIsInternal(t *testing.T) {
	_, err := NewService(&fakeRepo{err: errors.New("db down")}).Subjects(context.Background())
	if apperr.KindOf(err) != apperr.KindInternal {
		t.Errorf("expected internal error, got %v", err)
	}
}
