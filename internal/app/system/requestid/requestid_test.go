package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/solarfair/internal/app/system/requestid"
)

func TestMiddleware_AssignsID(t *testing.T) {
	var seen string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen == "" {
		t.Error("expected a request id in the handler context")
	}
	if got := rec.Header().Get(requestid.Header); got != seen {
		t.Errorf("expected id %q echoed in response header, got %q", seen, got)
	}
}

func TestMiddleware_ReusesIncomingID(t *testing.T) {
	var seen string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(requestid.Header, "upstream-id-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != "upstream-id-123" {
		t.Errorf("expected upstream id reused, got %q", seen)
	}
}

func TestFromContext_NoMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := requestid.FromContext(req.Context()); got != "" {
		t.Errorf("expected empty id without middleware, got %q", got)
	}
}
