package questionbank

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	SampleActive(ctx context.Context, f Filter, limit int) ([]Entry, error)
	Subjects(ctx context.Context) ([]string, error)
	Topics(ctx context.Context, subject string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// SampleActive returns up to limit random active entries matching every non-empty filter field.
func (r *repository) SampleActive(ctx context.Context, f Filter, limit int) ([]Entry, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if f.Subject != "" {
		q = q.Where("subject = ?", f.Subject)
	}
	if f.Topic != "" {
		q = q.Where("topic = ?", f.Topic)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	if f.ExamType != "" {
		q = q.Where("exam_type = ?", f.ExamType)
	}

	var entries []Entry
	if err := q.Order("RANDOM()").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) Subjects(ctx context.Context) ([]string, error) {
	var subjects []string
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Distinct("subject").
		Order("subject").
		Pluck("subject", &subjects).Error
	return subjects, err
}

func (r *repository) Topics(ctx context.Context, subject string) ([]string, error) {
	var topics []string
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("subject = ? AND topic IS NOT NULL", subject).
		Distinct("topic").
		Order("topic").
		Pluck("topic", &topics).Error
	return topics, err
}
