package aiquiz

// Question is the shape the generation service is asked to return.
type Question struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
	Explanation   string            `json:"explanation"`
	Difficulty    string            `json:"difficulty"`
	Tags          []string          `json:"tags"`
}

type QuestionRequest struct {
	ExamType   string `json:"examType" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count" validate:"required,min=1,max=50"`
}

type QuestionResponse struct {
	Questions []Question `json:"questions"`
}
