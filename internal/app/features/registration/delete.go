// internal/app/features/registration/delete.go
package registration

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/solarfair/internal/app/features/errors"
	registrationstore "github.com/dalemusser/solarfair/internal/app/store/registrations"
	"github.com/dalemusser/solarfair/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /registration. The id rides in the JSON body
// rather than the path.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete registration")
	defer cancel()

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		apierrors.WriteError(w, http.StatusBadRequest, "Registration id is required")
		return
	}

	deleted, err := h.Regs.DeleteByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, registrationstore.ErrNotFound) {
			apierrors.WriteError(w, http.StatusNotFound, "Registration not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete registration failed", err, "Something went wrong")
		return
	}

	h.Log.Info("registration deleted",
		zap.String("id", deleted.ID.Hex()),
		zap.String("email", deleted.Email))

	writeJSON(w, http.StatusOK, deleteResponse{Success: true})
}
