package questionsource

import (
	"strings"

	"github.com/saulo-duarte/quizee-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizee-lambda/internal/questionbank"
)

type Source string

const (
	SourceQuestionBank Source = "question_bank"
	SourceGenerated    Source = "generated"
	SourceFallback     Source = "fallback"
)

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// Question is the single canonical record every source is normalized into.
type Question struct {
	QuestionText  string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string
	Explanation   string
	Difficulty    string
	Tags          []string
}

type Request struct {
	ExamType string
	Subject  string
	Topic    string
	Count    int
	UseBank  bool
}

func normalizeDifficulty(raw string) string {
	switch d := strings.ToUpper(strings.TrimSpace(raw)); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d
	default:
		return DifficultyMedium
	}
}

// normalizeAnswer accepts "B", "b", "B)" or "B." and returns the bare letter.
func normalizeAnswer(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	letter, rest := s[:1], strings.TrimSpace(s[1:])
	if !strings.Contains("ABCD", letter) {
		return "", false
	}
	if rest != "" && rest != ")" && rest != "." && rest != ":" {
		return "", false
	}
	return letter, true
}

func defaultTags(subject, topic string) []string {
	tags := []string{strings.ToLower(subject)}
	if topic != "" {
		tags = append(tags, strings.ToLower(topic))
	}
	return tags
}

func fromBankEntry(e questionbank.Entry) (Question, bool) {
	answer, ok := normalizeAnswer(e.CorrectAnswer)
	if !ok {
		return Question{}, false
	}
	topic := ""
	if e.Topic != nil {
		topic = *e.Topic
	}
	return Question{
		QuestionText:  e.QuestionText,
		OptionA:       e.OptionA,
		OptionB:       e.OptionB,
		OptionC:       e.OptionC,
		OptionD:       e.OptionD,
		CorrectAnswer: answer,
		Explanation:   e.Explanation,
		Difficulty:    normalizeDifficulty(e.Difficulty),
		Tags:          defaultTags(e.Subject, topic),
	}, true
}

func option(opts map[string]string, key string) string {
	if v, ok := opts[key]; ok {
		return v
	}
	return opts[strings.ToLower(key)]
}

func fromGenerated(g aiquiz.Question, req Request) (Question, bool) {
	answer, ok := normalizeAnswer(g.CorrectAnswer)
	if !ok || strings.TrimSpace(g.Question) == "" {
		return Question{}, false
	}
	q := Question{
		QuestionText:  g.Question,
		OptionA:       option(g.Options, "A"),
		OptionB:       option(g.Options, "B"),
		OptionC:       option(g.Options, "C"),
		OptionD:       option(g.Options, "D"),
		CorrectAnswer: answer,
		Explanation:   g.Explanation,
		Difficulty:    normalizeDifficulty(g.Difficulty),
		Tags:          g.Tags,
	}
	if q.OptionA == "" || q.OptionB == "" || q.OptionC == "" || q.OptionD == "" {
		return Question{}, false
	}
	if len(q.Tags) == 0 {
		q.Tags = defaultTags(req.Subject, req.Topic)
	}
	return q, true
}
