package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quizee-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
	"github.com/saulo-duarte/quizee-lambda/internal/badge"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
	_ "github.com/saulo-duarte/quizee-lambda/internal/docs"
	"github.com/saulo-duarte/quizee-lambda/internal/exam"
	"github.com/saulo-duarte/quizee-lambda/internal/leaderboard"
	"github.com/saulo-duarte/quizee-lambda/internal/middlewares"
	"github.com/saulo-duarte/quizee-lambda/internal/questionbank"
	"github.com/saulo-duarte/quizee-lambda/internal/user"
)

type RouterConfig struct {
	AllowedOrigins      []string
	UserHandler         *user.Handler
	ExamHandler         *exam.Handler
	BadgeHandler        *badge.Handler
	LeaderboardHandler  *leaderboard.Handler
	QuestionBankHandler *questionbank.Handler
	AIQuizHandler       *aiquiz.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", user.Routes(cfg.UserHandler))

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Mount("/exams", exam.Routes(cfg.ExamHandler))
			r.Mount("/badges", badge.Routes(cfg.BadgeHandler))
			r.Mount("/leaderboard", leaderboard.Routes(cfg.LeaderboardHandler))
			r.Mount("/question-bank", questionbank.Routes(cfg.QuestionBankHandler))
			r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apperr.WriteStatus(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apperr.WriteStatus(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}
