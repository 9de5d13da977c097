package aiquiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert exam question generator for a competitive exam practice app.
Always respond with valid JSON only, no additional text or markdown formatting.`

const defaultDifficulty = "MEDIUM"

func BuildUserPrompt(req QuestionRequest) string {
	difficulty := strings.ToUpper(strings.TrimSpace(req.Difficulty))
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	topic := ""
	if req.Topic != "" {
		topic = fmt.Sprintf("Topic: %s\n", req.Topic)
	}

	return fmt.Sprintf(`Generate %d multiple choice questions for %s exam preparation.

Subject: %s
%sDifficulty: %s

Requirements:
- Each question must have exactly 4 options (A, B, C, D)
- Include detailed explanations for correct answers
- Questions should be relevant to the %s exam pattern
- Mix of conceptual, application-based, and analytical questions
- Ensure questions are unique and non-repetitive

Return ONLY a valid JSON array with this exact structure:
[
  {
    "question": "Question text here",
    "options": {"A": "Option A text", "B": "Option B text", "C": "Option C text", "D": "Option D text"},
    "correctAnswer": "A",
    "explanation": "Detailed explanation here",
    "difficulty": "%s",
    "tags": ["tag1", "tag2"]
  }
]`, req.Count, req.ExamType, req.Subject, topic, difficulty, req.ExamType, difficulty)
}
