package user

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/logout", auth.Logout)
	r.With(auth.AuthMiddleware).Get("/me", h.GetUser)
	return r
}
