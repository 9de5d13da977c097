package questionbank

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/questions", h.ListQuestions)
	r.Get("/subjects", h.ListSubjects)
	r.Get("/topics", h.ListTopics)
	return r
}
