package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeadersWildcardOrigin(t *testing.T) {
	handler := middleware.SecurityHeaders([]string{"*"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSecurityHeadersRejectsUnknownOrigin(t *testing.T) {
	handler := middleware.SecurityHeaders([]string{"https://trusted.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

func TestSecurityHeadersAnswersPreflight(t *testing.T) {
	handler := middleware.SecurityHeaders([]string{"https://trusted.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/users/performTransaction", nil)
	req.Header.Set("Origin", "https://trusted.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://trusted.example.com" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want echoed origin", got)
	}
}
