package user

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var dto SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid signup body")
		apperr.Respond(w, apperr.Validation("invalid request body"))
		return
	}

	res, err := h.service.Signup(r.Context(), dto)
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	auth.SetTokenCookie(w, res.Token)
	config.JSON(w, http.StatusCreated, res)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		apperr.Respond(w, apperr.Validation("invalid request body"))
		return
	}

	res, err := h.service.Login(r.Context(), dto)
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	auth.SetTokenCookie(w, res.Token)
	config.JSON(w, http.StatusOK, res)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	u, err := h.service.Me(r.Context(), userID)
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"user": u})
}
