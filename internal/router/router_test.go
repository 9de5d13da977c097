package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/quizee-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
	"github.com/saulo-duarte/quizee-lambda/internal/badge"
	"github.com/saulo-duarte/quizee-lambda/internal/exam"
	"github.com/saulo-duarte/quizee-lambda/internal/leaderboard"
	"github.com/saulo-duarte/quizee-lambda/internal/questionbank"
	"github.com/saulo-duarte/quizee-lambda/internal/user"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	auth.Init("router-test-secret")

	// Handlers are never reached by these requests, so nil services are fine.
	return New(RouterConfig{
		AllowedOrigins:      []string{"http://localhost:3000"},
		UserHandler:         user.NewHandler(nil),
		ExamHandler:         exam.NewHandler(nil),
		BadgeHandler:        badge.NewHandler(nil),
		LeaderboardHandler:  leaderboard.NewHandler(nil),
		QuestionBankHandler: questionbank.NewHandler(nil),
		AIQuizHandler:       aiquiz.NewHandler(nil),
	})
}

func TestRouter(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"health", http.MethodGet, "/health", http.StatusOK, `"OK"`},
		{"unknown route", http.MethodGet, "/api/nope", http.StatusNotFound, "Route not found"},
		{"exams require auth", http.MethodGet, "/api/exams", http.StatusUnauthorized, "Access token required"},
		{"badges require auth", http.MethodGet, "/api/badges", http.StatusUnauthorized, "Access token required"},
		{"leaderboard requires auth", http.MethodGet, "/api/leaderboard", http.StatusUnauthorized, "Access token required"},
		{"me requires auth", http.MethodGet, "/api/auth/me", http.StatusUnauthorized, "Access token required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
