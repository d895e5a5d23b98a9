// internal/app/features/registration/routes.go
package registration

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all registration routes under the path where the caller
// mounts it. Typically: r.Mount("/registration", registration.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public form submission
	r.Post("/", h.HandleCreate)

	// Admin table and record operations
	r.Get("/", h.ServeList)
	r.Get("/search", h.ServeSearch)
	r.Get("/export", h.ServeExport)
	r.Get("/{id}", h.ServeView)
	r.Delete("/", h.HandleDelete)

	return r
}
