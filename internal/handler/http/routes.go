package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the route table: a sub-router mounted at /api with a single
// GET /hello endpoint, wrapped by the tracing middleware. Unknown paths and
// unsupported methods get chi's default 404 and 405 responses.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/hello", h.hello)
	})

	return router
}
