package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s, validate: validator.New()}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Respond(w, apperr.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		apperr.Respond(w, apperr.Validation("examType, subject and count (1-50) are required"))
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		apperr.Respond(w, apperr.Upstream("Question generation service unavailable", err))
		return
	}

	config.JSON(w, http.StatusCreated, QuestionResponse{Questions: questions})
}
