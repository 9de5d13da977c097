package exam

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.GenerateExam)
	r.Get("/", h.ListExams)
	r.Get("/{id}", h.GetExam)
	r.Post("/{id}/submit", h.SubmitExam)
	return r
}
