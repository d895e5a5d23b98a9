// internal/app/features/registration/create.go
package registration

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/solarfair/internal/app/features/errors"
	registrationstore "github.com/dalemusser/solarfair/internal/app/store/registrations"
	"github.com/dalemusser/solarfair/internal/app/system/timeouts"
	"github.com/dalemusser/solarfair/internal/app/system/validate"
	"go.uber.org/zap"
)

// HandleCreate handles POST /registration.
//
// The payload runs through the validation policy first; violations come back
// 400 with the full ordered list. A pre-insert email lookup gives most
// duplicates a clean 409, and the unique index on email turns the
// check-then-insert race into a 409 as well instead of a second record.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create registration")
	defer cancel()

	var payload validate.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Normalize before checking so the model stored below carries the same
	// values the policy judged; padded enum fields would otherwise slip past
	// validation and fail the store's enum check.
	payload = validate.Normalize(payload)

	if violations := validate.Check(payload); len(violations) > 0 {
		h.Log.Info("registration rejected by validation",
			zap.Int("violations", len(violations)))
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Error:      "Please fill in all required fields",
			Violations: violations,
		})
		return
	}

	reg := toModel(payload)

	exists, err := h.Regs.EmailExists(ctx, reg.Email)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "duplicate-email lookup failed", err, "Something went wrong")
		return
	}
	if exists {
		apierrors.WriteError(w, http.StatusConflict, "A registration with this email already exists")
		return
	}

	created, err := h.Regs.Create(ctx, reg)
	if err != nil {
		if errors.Is(err, registrationstore.ErrDuplicateEmail) {
			apierrors.WriteError(w, http.StatusConflict, "A registration with this email already exists")
			return
		}
		h.ErrLog.LogServerError(w, r, "create registration failed", err, "Something went wrong")
		return
	}

	h.Log.Info("registration created",
		zap.String("id", created.ID.Hex()),
		zap.String("categorisation", created.Categorisation))

	writeJSON(w, http.StatusCreated, createResponse{Registration: created})
}
