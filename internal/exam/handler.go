package exam

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

type Handler struct {
	service ExamService
}

func NewHandler(s ExamService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	var req GenerateExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid exam generation body")
		apperr.Respond(w, apperr.Validation("invalid request body"))
		return
	}

	result, err := h.service.BuildExam(r.Context(), userID, req)
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, result)
}

func (h *Handler) ListExams(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	exams, err := h.service.ListExams(r.Context(), userID)
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"exams": exams})
}

func (h *Handler) GetExam(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	exam, err := h.service.GetExam(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	config.JSON(w, http.StatusOK, exam)
}

func (h *Handler) SubmitExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	answers, err := decodeAnswers(r)
	if err != nil {
		log.WithError(err).Warn("Invalid submission body")
		apperr.Respond(w, apperr.Validation("Invalid submission format"))
		return
	}

	result, err := h.service.SubmitAnswers(r.Context(), userID, chi.URLParam(r, "id"), answers)
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

var errAnswersNotArray = apperr.Validation("answers must be an array")

// decodeAnswers rejects bodies whose answers field is missing or not a JSON array.
func decodeAnswers(r *http.Request) ([]AnswerInput, error) {
	var body struct {
		Answers json.RawMessage `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(body.Answers)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errAnswersNotArray
	}

	answers := []AnswerInput{}
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
