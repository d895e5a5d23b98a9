// internal/app/features/registration/list.go
package registration

import (
	"net/http"

	"github.com/dalemusser/solarfair/internal/app/system/timeouts"
)

// ServeList handles GET /registration and returns every record, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list registrations")
	defer cancel()

	regs, err := h.Regs.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list registrations failed", err, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Registrations: regs})
}
