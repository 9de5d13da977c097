package exam

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizee-lambda/internal/leaderboard"
	"github.com/saulo-duarte/quizee-lambda/internal/questionbank"
)

var errInjected = errors.New("injected failure")

type memState struct {
	exams       map[uuid.UUID]Exam
	questions   map[uuid.UUID]Question
	sessions    map[uuid.UUID]QuizSession
	answers     []UserAnswer
	leaderboard map[uuid.UUID]leaderboard.Entry
}

func (s memState) clone() memState {
	c := memState{
		exams:       make(map[uuid.UUID]Exam, len(s.exams)),
		questions:   make(map[uuid.UUID]Question, len(s.questions)),
		sessions:    make(map[uuid.UUID]QuizSession, len(s.sessions)),
		answers:     append([]UserAnswer(nil), s.answers...),
		leaderboard: make(map[uuid.UUID]leaderboard.Entry, len(s.leaderboard)),
	}
	for k, v := range s.exams {
		c.exams[k] = v
	}
	for k, v := range s.questions {
		c.questions[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = v
	}
	for k, v := range s.leaderboard {
		c.leaderboard[k] = v
	}
	return c
}

// memStore restores its previous state whenever a transaction callback fails.
type memStore struct {
	state  memState
	bank   []questionbank.Entry
	failOn string
}

func newMemStore(bank ...questionbank.Entry) *memStore {
	return &memStore{
		state: memState{
			exams:       map[uuid.UUID]Exam{},
			questions:   map[uuid.UUID]Question{},
			sessions:    map[uuid.UUID]QuizSession{},
			leaderboard: map[uuid.UUID]leaderboard.Entry{},
		},
		bank: bank,
	}
}

func (m *memStore) fail(op string) error {
	if m.failOn == op {
		return errInjected
	}
	return nil
}

func (m *memStore) Transaction(_ context.Context, fn func(tx Repository) error) error {
	snapshot := m.state.clone()
	if err := fn(m); err != nil {
		m.state = snapshot
		return err
	}
	return nil
}

func (m *memStore) CreateExam(_ context.Context, exam *Exam) error {
	if err := m.fail("CreateExam"); err != nil {
		return err
	}
	m.state.exams[exam.ID] = *exam
	return nil
}

func (m *memStore) CreateQuestions(_ context.Context, questions []*Question) error {
	if err := m.fail("CreateQuestions"); err != nil {
		return err
	}
	for _, q := range questions {
		m.state.questions[q.ID] = *q
	}
	return nil
}

func (m *memStore) GetExamForUser(_ context.Context, examID, userID uuid.UUID) (*Exam, error) {
	e, ok := m.state.exams[examID]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	return &e, nil
}

func (m *memStore) ListExamsByUser(_ context.Context, userID uuid.UUID) ([]*ExamSummary, error) {
	var out []*ExamSummary
	for _, e := range m.state.exams {
		if e.UserID != userID {
			continue
		}
		count := 0
		for _, q := range m.state.questions {
			if q.ExamID == e.ID {
				count++
			}
		}
		out = append(out, &ExamSummary{Exam: e, QuestionCount: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ListQuestionsByExam(_ context.Context, examID uuid.UUID) ([]*Question, error) {
	var out []*Question
	for _, q := range m.state.questions {
		if q.ExamID == examID {
			q := q
			out = append(out, &q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *memStore) GetQuestionByID(_ context.Context, id uuid.UUID) (*Question, error) {
	q, ok := m.state.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (m *memStore) UpdateExamStatus(_ context.Context, examID uuid.UUID, status ExamStatus) error {
	if err := m.fail("UpdateExamStatus"); err != nil {
		return err
	}
	e := m.state.exams[examID]
	e.Status = status
	m.state.exams[examID] = e
	return nil
}

func (m *memStore) CreateSession(_ context.Context, session *QuizSession) error {
	if err := m.fail("CreateSession"); err != nil {
		return err
	}
	m.state.sessions[session.ID] = *session
	return nil
}

func (m *memStore) CompleteSession(_ context.Context, sessionID uuid.UUID, score float64, end time.Time) error {
	if err := m.fail("CompleteSession"); err != nil {
		return err
	}
	s := m.state.sessions[sessionID]
	s.Status = SessionStatusCompleted
	s.TotalScore = score
	s.EndTime = &end
	m.state.sessions[sessionID] = s
	return nil
}

func (m *memStore) CreateAnswer(_ context.Context, answer *UserAnswer) error {
	if err := m.fail("CreateAnswer"); err != nil {
		return err
	}
	m.state.answers = append(m.state.answers, *answer)
	return nil
}

func (m *memStore) SampleActive(_ context.Context, f questionbank.Filter, limit int) ([]questionbank.Entry, error) {
	var out []questionbank.Entry
	for _, e := range m.bank {
		if e.Subject == f.Subject && e.IsActive {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) CreditLeaderboard(_ context.Context, userID uuid.UUID, score float64) error {
	if err := m.fail("CreditLeaderboard"); err != nil {
		return err
	}
	e := m.state.leaderboard[userID]
	e.UserID = userID
	e.TotalPoints += leaderboard.CreditPoints(score)
	e.TotalExams++
	m.state.leaderboard[userID] = e
	return nil
}
