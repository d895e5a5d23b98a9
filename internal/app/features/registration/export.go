// internal/app/features/registration/export.go
package registration

import (
	"net/http"

	"github.com/dalemusser/solarfair/internal/app/export"
	apierrors "github.com/dalemusser/solarfair/internal/app/features/errors"
	"github.com/dalemusser/solarfair/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// utf8BOM lets Excel detect UTF-8 in the CSV download.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ServeExport handles GET /registration/export?format=csv|xlsx and streams the
// full data set as an attachment. CSV is the default format.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "export registrations")
	defer cancel()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		apierrors.WriteError(w, http.StatusBadRequest, "Unsupported export format")
		return
	}

	regs, err := h.Regs.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "export query failed", err, "Something went wrong")
		return
	}

	switch format {
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename=registrations.xlsx`)
		if err := export.WriteXLSX(w, regs); err != nil {
			h.Log.Error("xlsx export write failed", zap.Error(err))
			return
		}
	default:
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename=registrations.csv`)
		if _, err := w.Write(utf8BOM); err != nil {
			h.Log.Error("csv export write failed", zap.Error(err))
			return
		}
		if err := export.WriteCSV(w, regs); err != nil {
			h.Log.Error("csv export write failed", zap.Error(err))
			return
		}
	}

	h.Log.Info("registrations exported",
		zap.String("format", format),
		zap.Int("rows", len(regs)))
}
