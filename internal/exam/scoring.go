package exam

import "fmt"

type Outcome int

const (
	OutcomeUnanswered Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// Evaluate compares the selection to the key with case-sensitive equality.
func Evaluate(selected *string, correct string) Outcome {
	if selected == nil || *selected == "" {
		return OutcomeUnanswered
	}
	if *selected == correct {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

func (m MarkingScheme) Delta(o Outcome) float64 {
	switch o {
	case OutcomeCorrect:
		return m.Correct
	case OutcomeIncorrect:
		return m.Incorrect
	default:
		return m.Unanswered
	}
}

func (a *Analytics) Add(o Outcome) {
	switch o {
	case OutcomeCorrect:
		a.Correct++
	case OutcomeIncorrect:
		a.Incorrect++
	default:
		a.Unanswered++
	}
}

func (a Analytics) Total() int {
	return a.Correct + a.Incorrect + a.Unanswered
}

// Percentage is correct over submitted answers, two decimals. No answers yields "0.00".
func Percentage(correct, submitted int) string {
	if submitted <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(correct)/float64(submitted)*100)
}
