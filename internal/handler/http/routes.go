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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes guarded by the JWT auth middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/persons/", h.upsertPersons)
		r.Post("/api/persons/list", h.listPersons)
		r.Delete("/api/persons/", h.deletePersons)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
