// internal/app/features/registration/view.go
package registration

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/dalemusser/solarfair/internal/app/features/errors"
	registrationstore "github.com/dalemusser/solarfair/internal/app/store/registrations"
	"github.com/dalemusser/solarfair/internal/app/system/timeouts"
)

// ServeView handles GET /registration/{id}. A malformed id is reported the
// same as a missing record; callers only need to know it isn't there.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "view registration")
	defer cancel()

	id := chi.URLParam(r, "id")

	reg, err := h.Regs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, registrationstore.ErrNotFound) {
			apierrors.WriteError(w, http.StatusNotFound, "Registration not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "get registration failed", err, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, viewResponse{Registration: *reg})
}
