package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/todos", func(r chi.Router) {
		r.Post("/", h.createTodo)
		r.Get("/", h.listActiveTodos)

		// registered before the wildcard so that "sync" is never taken
		// for a client id
		r.Get("/sync", h.getChanges)

		r.Patch("/{clientID}", h.updateTodo)
		r.Delete("/{clientID}", h.deleteTodo)
	})

	router.Get("/healthz", h.healthz)

	return router
}
