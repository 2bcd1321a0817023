package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip, withBodyLimit)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/events", h.listEvents)

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.addNote)
			r.Get("/{id}", h.getNote)
			r.Delete("/{id}", h.deleteNote)
			r.Post("/{id}/share", h.shareNote)
		})

		r.Route("/api/shared", func(r chi.Router) {
			r.Get("/", h.listSharedNotes)
			r.Get("/{id}", h.getSharedNote)
			r.Delete("/{id}", h.deleteSharedNote)
		})

		r.Put("/api/secret", h.addSecretNote)
		r.Get("/api/secret", h.showSecretNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
