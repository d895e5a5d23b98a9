// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/solarfair/internal/app/system/requestid"
	"go.uber.org/zap"
)

// errorBody is the wire shape for every error response: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// WriteError writes a JSON error response with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}

// ErrorLogger pairs server-error logging with the generic client response.
// Handlers log the real failure once, with the request id, and the caller
// only ever sees the public message, so storage internals never leak.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the internal message and error, then responds 500 with
// the public message.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, internalMsg string, err error, publicMsg string) {
	e.log.Error(internalMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestid.FromContext(r.Context())),
	)
	WriteError(w, http.StatusInternalServerError, publicMsg)
}
