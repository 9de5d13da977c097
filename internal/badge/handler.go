package badge

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s, validate: validator.New()}
}

func (h *Handler) ListBadges(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	badges, err := h.service.List(r.Context(), userID)
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"badges": badges})
}

func (h *Handler) ClaimBadge(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	var req ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Respond(w, apperr.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		apperr.Respond(w, apperr.Validation("badge_id is required"))
		return
	}

	b, err := h.service.Claim(r.Context(), userID, req.BadgeID)
	if err != nil {
		apperr.Respond(w, err)
		return
	}

	config.JSON(w, http.StatusOK, ClaimResponse{Badge: b, Animation: claimAnimation})
}
