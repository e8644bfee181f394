package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"wellness-chat-backend/internal/handlers"
	"wellness-chat-backend/internal/middleware"
)

func New(chatHandler *handlers.ChatHandler, allowedOrigin string) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)

	// Origin-guarded routes. Unknown paths fall through to chi's 404.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OriginGuard(allowedOrigin))

		r.Get("/health", handlers.Health)
		r.Options("/health", handlers.Options)

		r.Post("/chat", chatHandler.Chat)
		r.Options("/chat", handlers.Options)
	})

	return r
}
