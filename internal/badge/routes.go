package badge

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListBadges)
	r.Post("/claim", h.ClaimBadge)
	return r
}
