package questionbank

import (
	"net/http"
	"strconv"

	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	entries, err := h.service.Browse(r.Context(), Filter{
		Subject:    q.Get("subject"),
		Topic:      q.Get("topic"),
		Difficulty: q.Get("difficulty"),
		ExamType:   q.Get("examType"),
	}, limit)
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"questions": entries})
}

func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.service.Subjects(r.Context())
	if err != nil {
		apperr.Respond(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]interface{}{"subjects": subjects})
}

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.Topics(r.Context(), r.URL.Query().Get("subject"))
	if err != nil {
		apperr.Respond(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]interface{}{"topics": topics})
}
