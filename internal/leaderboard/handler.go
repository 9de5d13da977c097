package leaderboard

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

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rankings, err := h.service.Top(r.Context(), limit)
	if err != nil {
		apperr.Respond(w, err)
		return
	}
	if rankings == nil {
		rankings = []Ranking{}
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"rankings": rankings})
}
