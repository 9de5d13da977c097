package exam

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
	"github.com/saulo-duarte/quizee-lambda/internal/questionsource"
	"gorm.io/datatypes"
)

var (
	ErrExamNotFound          = apperr.NotFound("Exam not found")
	ErrQuestionCountMismatch = errors.New("persisted question count does not match the exam")
)

type ExamService interface {
	BuildExam(ctx context.Context, userID uuid.UUID, req GenerateExamRequest) (*BuildExamResult, error)
	GetExam(ctx context.Context, userID uuid.UUID, examID string) (*ExamWithQuestionsDTO, error)
	ListExams(ctx context.Context, userID uuid.UUID) ([]*ExamSummary, error)
	SubmitAnswers(ctx context.Context, userID uuid.UUID, examID string, answers []AnswerInput) (*SubmissionResult, error)
}

// RankingInvalidator is notified after a submission commits.
type RankingInvalidator interface {
	Invalidate(ctx context.Context)
}

type examService struct {
	repo     Repository
	resolver *questionsource.Resolver
	rankings RankingInvalidator
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, resolver *questionsource.Resolver, rankings RankingInvalidator) ExamService {
	return &examService{
		repo:     repo,
		resolver: resolver,
		rankings: rankings,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *examService) BuildExam(ctx context.Context, userID uuid.UUID, req GenerateExamRequest) (*BuildExamResult, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.Validation("examType, subject, and numQuestions are required")
	}
	examType := ExamType(strings.ToUpper(strings.TrimSpace(req.ExamType)))
	if !examType.IsValid() {
		return nil, apperr.Validation(fmt.Sprintf("examType must be one of %v", AllExamTypes))
	}

	scheme := DefaultMarkingScheme
	if req.MarkingScheme != nil {
		scheme = *req.MarkingScheme
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = DefaultDurationMinutes
	}
	useBank := true
	if req.UseQuestionBank != nil {
		useBank = *req.UseQuestionBank
	}

	subject := strings.TrimSpace(req.Subject)
	topic := strings.TrimSpace(req.Topic)
	exam := &Exam{
		ID:              uuid.New(),
		UserID:          userID,
		ExamType:        examType,
		ExamName:        fmt.Sprintf("%s - %s", subject, examType),
		Subject:         subject,
		TotalQuestions:  req.NumQuestions,
		DurationMinutes: duration,
		MarkingScheme:   datatypes.NewJSONType(scheme),
		Status:          ExamStatusActive,
		CreatedAt:       s.now(),
	}
	if topic != "" {
		exam.Topic = &topic
	}

	var (
		questions []*Question
		source    questionsource.Source
	)
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateExam(ctx, exam); err != nil {
			return err
		}

		res, err := s.resolver.Resolve(ctx, tx, questionsource.Request{
			ExamType: string(examType),
			Subject:  subject,
			Topic:    topic,
			Count:    exam.TotalQuestions,
			UseBank:  useBank,
		})
		if err != nil {
			return err
		}

		questions = make([]*Question, 0, len(res.Questions))
		for i, q := range res.Questions {
			questions = append(questions, &Question{
				ID:            uuid.New(),
				ExamID:        exam.ID,
				QuestionText:  q.QuestionText,
				OptionA:       q.OptionA,
				OptionB:       q.OptionB,
				OptionC:       q.OptionC,
				OptionD:       q.OptionD,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
				Difficulty:    q.Difficulty,
				Tags:          q.Tags,
				Position:      i,
			})
		}
		if len(questions) != exam.TotalQuestions {
			return ErrQuestionCountMismatch
		}
		if err := tx.CreateQuestions(ctx, questions); err != nil {
			return err
		}

		source = res.Source
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to generate exam")
		if errors.Is(err, questionsource.ErrInsufficientQuestions) {
			return nil, apperr.Internal(err.Error(), err)
		}
		return nil, apperr.Internal("Failed to generate exam", err)
	}

	log.WithFields(map[string]interface{}{
		"exam_id": exam.ID,
		"source":  source,
		"count":   len(questions),
	}).Info("Exam generated")

	return &BuildExamResult{
		ExamID:    exam.ID,
		Exam:      exam,
		Questions: questions,
		Source:    source,
	}, nil
}

func (s *examService) GetExam(ctx context.Context, userID uuid.UUID, examID string) (*ExamWithQuestionsDTO, error) {
	id, err := uuid.Parse(examID)
	if err != nil {
		return nil, ErrExamNotFound
	}

	exam, err := s.repo.GetExamForUser(ctx, id, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to load exam", err)
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	questions, err := s.repo.ListQuestionsByExam(ctx, exam.ID)
	if err != nil {
		return nil, apperr.Internal("Failed to load exam", err)
	}

	return &ExamWithQuestionsDTO{Exam: exam, Questions: questions}, nil
}

func (s *examService) ListExams(ctx context.Context, userID uuid.UUID) ([]*ExamSummary, error) {
	exams, err := s.repo.ListExamsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to list exams", err)
	}
	if exams == nil {
		exams = []*ExamSummary{}
	}
	return exams, nil
}

// SubmitAnswers scores a submission and records it atomically: the session, every answer row,
// the exam status and the leaderboard credit commit together or not at all.
func (s *examService) SubmitAnswers(ctx context.Context, userID uuid.UUID, examID string, answers []AnswerInput) (*SubmissionResult, error) {
	log := config.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": userID,
		"exam_id": examID,
	})

	if answers == nil {
		return nil, apperr.Validation("Invalid submission format")
	}
	id, err := uuid.Parse(examID)
	if err != nil {
		return nil, ErrExamNotFound
	}

	var result *SubmissionResult
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		exam, err := tx.GetExamForUser(ctx, id, userID)
		if err != nil {
			return err
		}
		if exam == nil {
			return ErrExamNotFound
		}

		session := &QuizSession{
			ID:        uuid.New(),
			UserID:    userID,
			ExamID:    exam.ID,
			Status:    SessionStatusCompleted,
			StartTime: s.now(),
		}
		if err := tx.CreateSession(ctx, session); err != nil {
			return err
		}

		scheme := exam.MarkingScheme.Data()
		var (
			score     float64
			analytics Analytics
		)
		details := make([]DetailedResult, 0, len(answers))

		for _, a := range answers {
			qid, err := uuid.Parse(a.QuestionID)
			if err != nil {
				log.WithField("question_id", a.QuestionID).Warn("Skipping answer with malformed question id")
				continue
			}
			q, err := tx.GetQuestionByID(ctx, qid)
			if err != nil {
				return err
			}
			if q == nil || q.ExamID != exam.ID {
				log.WithField("question_id", a.QuestionID).Warn("Skipping answer for unknown question")
				continue
			}

			outcome := Evaluate(a.SelectedAnswer, q.CorrectAnswer)
			score += scheme.Delta(outcome)
			analytics.Add(outcome)

			var selected *string
			if outcome != OutcomeUnanswered {
				v := *a.SelectedAnswer
				selected = &v
			}
			timeTaken := wholeSeconds(a.TimeTaken)

			if err := tx.CreateAnswer(ctx, &UserAnswer{
				ID:               uuid.New(),
				SessionID:        session.ID,
				QuestionID:       q.ID,
				SelectedAnswer:   selected,
				IsCorrect:        outcome == OutcomeCorrect,
				TimeTakenSeconds: timeTaken,
			}); err != nil {
				return err
			}

			details = append(details, DetailedResult{
				QuestionID:    q.ID,
				QuestionText:  q.QuestionText,
				YourAnswer:    selected,
				CorrectAnswer: q.CorrectAnswer,
				IsCorrect:     outcome == OutcomeCorrect,
				Explanation:   q.Explanation,
				TimeTaken:     timeTaken,
			})
		}

		if err := tx.CompleteSession(ctx, session.ID, score, s.now()); err != nil {
			return err
		}
		if err := tx.UpdateExamStatus(ctx, exam.ID, ExamStatusCompleted); err != nil {
			return err
		}
		if err := tx.CreditLeaderboard(ctx, userID, score); err != nil {
			return err
		}

		result = &SubmissionResult{
			SessionID:       session.ID,
			Score:           score,
			Analytics:       analytics,
			Percentage:      Percentage(analytics.Correct, len(answers)),
			DetailedResults: details,
		}
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, err
		}
		log.WithError(err).Error("Failed to submit exam")
		return nil, apperr.Internal("Failed to submit exam", err)
	}

	if s.rankings != nil {
		s.rankings.Invalidate(ctx)
	}

	log.WithFields(map[string]interface{}{
		"session_id": result.SessionID,
		"score":      result.Score,
	}).Info("Exam submitted")

	return result, nil
}

// wholeSeconds rounds a client-reported duration to the nearest second, never below zero.
func wholeSeconds(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}
