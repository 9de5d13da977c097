package database

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quizee-lambda/internal/badge"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
	"github.com/saulo-duarte/quizee-lambda/internal/exam"
	"github.com/saulo-duarte/quizee-lambda/internal/leaderboard"
	"github.com/saulo-duarte/quizee-lambda/internal/questionbank"
	"github.com/saulo-duarte/quizee-lambda/internal/user"
	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&leaderboard.Entry{},
		&questionbank.Entry{},
		&exam.Exam{},
		&exam.Question{},
		&exam.QuizSession{},
		&exam.UserAnswer{},
		&badge.Badge{},
		&badge.UserBadge{},
	}
}

// Migrate creates missing tables and seeds the badge catalog. Safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := config.WithContext(ctx)

	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid extension: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := badge.NewRepository(db).SeedCatalog(ctx, badge.Catalog); err != nil {
		return fmt.Errorf("seed badges: %w", err)
	}

	log.Info("Database schema up to date")
	return nil
}
