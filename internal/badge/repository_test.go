package badge

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteRepository(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.Exec(`CREATE TABLE user_badges (
		user_id text NOT NULL,
		badge_id text NOT NULL,
		earned_at datetime NOT NULL,
		is_claimed boolean NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, badge_id)
	)`).Error
	if err != nil {
		t.Fatalf("create user_badges: %v", err)
	}
	return db, NewRepository(db)
}

func TestRepositoryAwardIfAbsentInsertsOnce(t *testing.T) {
	db, repo := newSQLiteRepository(t)
	ctx := context.Background()
	userID, badgeID := uuid.New(), uuid.New()

	first, err := repo.AwardIfAbsent(ctx, &UserBadge{UserID: userID, BadgeID: badgeID, EarnedAt: time.Now()})
	if err != nil {
		t.Fatalf("first award: %v", err)
	}
	if !first {
		t.Error("first award should report an insert")
	}

	second, err := repo.AwardIfAbsent(ctx, &UserBadge{UserID: userID, BadgeID: badgeID, EarnedAt: time.Now()})
	if err != nil {
		t.Fatalf("second award: %v", err)
	}
	if second {
		t.Error("second award should be a no-op")
	}

	var n int64
	if err := db.Model(&UserBadge{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestRepositoryClaimIsOneWay(t *testing.T) {
	db, repo := newSQLiteRepository(t)
	ctx := context.Background()
	userID, badgeID := uuid.New(), uuid.New()

	if ok, _ := repo.Claim(ctx, userID, badgeID); ok {
		t.Error("claiming an unearned badge should not succeed")
	}

	if _, err := repo.AwardIfAbsent(ctx, &UserBadge{UserID: userID, BadgeID: badgeID, EarnedAt: time.Now()}); err != nil {
		t.Fatalf("award: %v", err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"first claim flips the flag", true},
		{"second claim finds nothing to flip", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Claim(ctx, userID, badgeID)
			if err != nil {
				t.Fatalf("Claim: %v", err)
			}
			if got != tt.want {
				t.Errorf("Claim = %v, want %v", got, tt.want)
			}
		})
	}

	var ub UserBadge
	if err := db.First(&ub, "user_id = ? AND badge_id = ?", userID, badgeID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ub.IsClaimed {
		t.Error("badge should stay claimed")
	}
}
