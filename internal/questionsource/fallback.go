package questionsource

const defaultFallbackSubject = "Biology"

var fallbackSets = map[string][]Question{
	"Biology": {
		{
			QuestionText:  "Which organelle is known as the powerhouse of the cell?",
			OptionA:       "Nucleus",
			OptionB:       "Mitochondria",
			OptionC:       "Ribosome",
			OptionD:       "Golgi apparatus",
			CorrectAnswer: "B",
			Explanation:   "Mitochondria produce ATP through cellular respiration, providing energy for the cell.",
			Difficulty:    DifficultyEasy,
			Tags:          []string{"cell-biology", "organelles"},
		},
		{
			QuestionText:  "What is the function of ribosomes?",
			OptionA:       "Energy production",
			OptionB:       "Protein synthesis",
			OptionC:       "DNA replication",
			OptionD:       "Lipid storage",
			CorrectAnswer: "B",
			Explanation:   "Ribosomes translate mRNA into proteins through the process of translation.",
			Difficulty:    DifficultyMedium,
			Tags:          []string{"cell-biology", "protein-synthesis"},
		},
	},
	"Mathematics": {
		{
			QuestionText:  "What is the value of π (pi) approximately?",
			OptionA:       "3.14",
			OptionB:       "2.71",
			OptionC:       "1.41",
			OptionD:       "1.73",
			CorrectAnswer: "A",
			Explanation:   "Pi (π) is approximately 3.14159, commonly rounded to 3.14.",
			Difficulty:    DifficultyEasy,
			Tags:          []string{"constants", "geometry"},
		},
		{
			QuestionText:  "What is the derivative of x²?",
			OptionA:       "x",
			OptionB:       "2x",
			OptionC:       "x²",
			OptionD:       "2x²",
			CorrectAnswer: "B",
			Explanation:   "Using the power rule: d/dx(x²) = 2x¹ = 2x",
			Difficulty:    DifficultyMedium,
			Tags:          []string{"calculus", "derivatives"},
		},
	},
	"Physics": {
		{
			QuestionText:  "What is Newton's second law of motion?",
			OptionA:       "F = ma",
			OptionB:       "E = mc²",
			OptionC:       "V = IR",
			OptionD:       "PV = nRT",
			CorrectAnswer: "A",
			Explanation:   "Newton's second law states that Force equals mass times acceleration (F = ma).",
			Difficulty:    DifficultyEasy,
			Tags:          []string{"mechanics", "newton-laws"},
		},
	},
	"Chemistry": {
		{
			QuestionText:  "What is the atomic number of Carbon?",
			OptionA:       "4",
			OptionB:       "6",
			OptionC:       "8",
			OptionD:       "12",
			CorrectAnswer: "B",
			Explanation:   "Carbon has 6 protons, giving it an atomic number of 6.",
			Difficulty:    DifficultyEasy,
			Tags:          []string{"periodic-table", "elements"},
		},
	},
}

// fallbackQuestions cycles the subject's local set until count questions exist.
// Unknown subjects use the Biology set.
func fallbackQuestions(subject string, count int) []Question {
	set, ok := fallbackSets[subject]
	if !ok {
		set = fallbackSets[defaultFallbackSubject]
	}

	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		q := set[i%len(set)]
		q.Tags = append([]string(nil), q.Tags...)
		out = append(out, q)
	}
	return out
}
