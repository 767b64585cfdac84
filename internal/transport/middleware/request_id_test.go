package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/insurdesk/brokerage-backend/pkg/ctxutil"
)

func TestRequestID_Generated(t *testing.T) {
	var gotID string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(rec, req)

	if gotID == "" {
		t.Fatal("expected generated request id in context")
	}
	if rec.Header().Get("X-Request-Id") != gotID {
		t.Errorf("response header %q does not match context id %q",
			rec.Header().Get("X-Request-Id"), gotID)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var gotID string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "incoming-id")
	rec := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(rec, req)

	if gotID != "incoming-id" {
		t.Errorf("expected incoming id to be kept, got %q", gotID)
	}
}
