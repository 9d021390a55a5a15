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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.rateLimit)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/public/lists/{shareID}", h.publicList)

		r.Post("/api/claims", h.createClaim)
		r.Delete("/api/claims/{claimID}", h.retractClaim)
	})

	// session-scoped routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.rateLimit)

		r.Get("/api/users/me", h.profile)
		r.Put("/api/users/me", h.updateProfile)
		r.Get("/api/users/export", h.export)
		r.Delete("/api/users/delete", h.deleteAccount)

		r.Get("/api/lists", h.lists)
		r.Post("/api/lists", h.createList)
		r.Get("/api/lists/{listID}", h.list)
		r.Put("/api/lists/{listID}", h.updateList)
		r.Delete("/api/lists/{listID}", h.deleteList)

		r.Post("/api/lists/{listID}/items", h.createItem)
		r.Put("/api/items/{itemID}", h.updateItem)
		r.Delete("/api/items/{itemID}", h.deleteItem)

		r.Post("/api/metadata", h.metadata)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
