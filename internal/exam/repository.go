package exam

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizee-lambda/internal/leaderboard"
	"github.com/saulo-duarte/quizee-lambda/internal/questionbank"
	"gorm.io/gorm"
)

// Repository is bound to either the pool or a single transaction. Inside Transaction every
// call, the question bank sampling and the leaderboard credit included, shares that transaction.
type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	CreateExam(ctx context.Context, exam *Exam) error
	CreateQuestions(ctx context.Context, questions []*Question) error
	GetExamForUser(ctx context.Context, examID, userID uuid.UUID) (*Exam, error)
	ListExamsByUser(ctx context.Context, userID uuid.UUID) ([]*ExamSummary, error)
	ListQuestionsByExam(ctx context.Context, examID uuid.UUID) ([]*Question, error)
	GetQuestionByID(ctx context.Context, id uuid.UUID) (*Question, error)
	UpdateExamStatus(ctx context.Context, examID uuid.UUID, status ExamStatus) error

	CreateSession(ctx context.Context, session *QuizSession) error
	CompleteSession(ctx context.Context, sessionID uuid.UUID, score float64, end time.Time) error
	CreateAnswer(ctx context.Context, answer *UserAnswer) error

	SampleActive(ctx context.Context, f questionbank.Filter, limit int) ([]questionbank.Entry, error)
	CreditLeaderboard(ctx context.Context, userID uuid.UUID, score float64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) CreateExam(ctx context.Context, exam *Exam) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *repository) CreateQuestions(ctx context.Context, questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&questions).Error
}

// GetExamForUser returns nil when the exam does not exist or belongs to someone else.
func (r *repository) GetExamForUser(ctx context.Context, examID, userID uuid.UUID) (*Exam, error) {
	var exam Exam
	err := r.db.WithContext(ctx).First(&exam, "id = ? AND user_id = ?", examID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *repository) ListExamsByUser(ctx context.Context, userID uuid.UUID) ([]*ExamSummary, error) {
	var exams []*ExamSummary
	err := r.db.WithContext(ctx).
		Table("exams e").
		Select("e.*, COUNT(q.id) AS question_count").
		Joins("LEFT JOIN questions q ON q.exam_id = e.id").
		Where("e.user_id = ?", userID).
		Group("e.id").
		Order("e.created_at DESC").
		Scan(&exams).Error
	return exams, err
}

func (r *repository) ListQuestionsByExam(ctx context.Context, examID uuid.UUID) ([]*Question, error) {
	var questions []*Question
	err := r.db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("position ASC").
		Find(&questions).Error
	return questions, err
}

func (r *repository) GetQuestionByID(ctx context.Context, id uuid.UUID) (*Question, error) {
	var q Question
	err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repository) UpdateExamStatus(ctx context.Context, examID uuid.UUID, status ExamStatus) error {
	return r.db.WithContext(ctx).
		Model(&Exam{}).
		Where("id = ?", examID).
		Update("status", status).Error
}

func (r *repository) CreateSession(ctx context.Context, session *QuizSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repository) CompleteSession(ctx context.Context, sessionID uuid.UUID, score float64, end time.Time) error {
	return r.db.WithContext(ctx).
		Model(&QuizSession{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"status":      SessionStatusCompleted,
			"total_score": score,
			"end_time":    end,
		}).Error
}

func (r *repository) CreateAnswer(ctx context.Context, answer *UserAnswer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *repository) SampleActive(ctx context.Context, f questionbank.Filter, limit int) ([]questionbank.Entry, error) {
	return questionbank.NewRepository(r.db).SampleActive(ctx, f, limit)
}

func (r *repository) CreditLeaderboard(ctx context.Context, userID uuid.UUID, score float64) error {
	return leaderboard.NewRepository(r.db).Credit(ctx, userID, score)
}
