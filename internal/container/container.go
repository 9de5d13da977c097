package container

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizee-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
	"github.com/saulo-duarte/quizee-lambda/internal/badge"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
	"github.com/saulo-duarte/quizee-lambda/internal/database"
	"github.com/saulo-duarte/quizee-lambda/internal/exam"
	"github.com/saulo-duarte/quizee-lambda/internal/leaderboard"
	"github.com/saulo-duarte/quizee-lambda/internal/questionbank"
	"github.com/saulo-duarte/quizee-lambda/internal/questionsource"
	"github.com/saulo-duarte/quizee-lambda/internal/router"
	"github.com/saulo-duarte/quizee-lambda/internal/user"
)

type Container struct {
	Settings config.Settings
	DB       *gorm.DB
	Redis    *redis.Client

	UserContainer         *user.UserContainer
	ExamContainer         *exam.ExamContainer
	BadgeContainer        *badge.BadgeContainer
	LeaderboardContainer  *leaderboard.Container
	QuestionBankContainer *questionbank.Container
	AIQuizContainer       *aiquiz.AIQuizContainer
}

func New(ctx context.Context) (*Container, error) {
	config.Init()
	settings := config.Load()
	auth.Init(settings.JWTSecret)
	log := config.WithContext(ctx)

	db, err := config.Connect(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if settings.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return nil, err
		}
	}

	rdb, err := config.ConnectRedis(ctx, settings.RedisURL)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, leaderboard cache disabled")
		rdb = nil
	}

	aiQuizContainer := aiquiz.NewAIQuizContainer(ctx, settings.GeminiModel)
	var generator questionsource.Generator
	if aiQuizContainer.Enabled {
		generator = aiQuizContainer.Service
	}
	resolver := questionsource.NewResolver(generator, settings.GenerationTimeout)

	leaderboardContainer := leaderboard.NewContainer(db, rdb)

	return &Container{
		Settings:              settings,
		DB:                    db,
		Redis:                 rdb,
		UserContainer:         user.NewUserContainer(db),
		ExamContainer:         exam.NewExamContainer(db, resolver, leaderboardContainer.Service),
		BadgeContainer:        badge.NewBadgeContainer(db),
		LeaderboardContainer:  leaderboardContainer,
		QuestionBankContainer: questionbank.NewContainer(db),
		AIQuizContainer:       aiQuizContainer,
	}, nil
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		AllowedOrigins:      c.Settings.AllowedOrigins,
		UserHandler:         c.UserContainer.Handler,
		ExamHandler:         c.ExamContainer.Handler,
		BadgeHandler:        c.BadgeContainer.Handler,
		LeaderboardHandler:  c.LeaderboardContainer.Handler,
		QuestionBankHandler: c.QuestionBankContainer.Handler,
		AIQuizHandler:       c.AIQuizContainer.Handler,
	})
}

func (c *Container) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if sqlDB, err := c.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
