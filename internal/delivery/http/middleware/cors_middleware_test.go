package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsRequest(t *testing.T, m *CORSMiddleware, method, origin string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	reachedNext := false
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reachedNext = true
	}))
	req := httptest.NewRequest(method, "/api/v1/health", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reachedNext
}

func TestCORSWildcardAllowsAnyOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})
	rec, reachedNext := corsRequest(t, m, http.MethodGet, "https://anything.example.com")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard allow origin, got %q", got)
	}
	if !reachedNext {
		t.Error("expected the request to reach the next handler")
	}
}

func TestCORSEchoesConfiguredOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://portal.example.com"})
	rec, _ := corsRequest(t, m, http.MethodGet, "https://portal.example.com")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://portal.example.com" {
		t.Errorf("expected the configured origin echoed back, got %q", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("expected Vary: Origin, got %q", got)
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://portal.example.com"})
	rec, reachedNext := corsRequest(t, m, http.MethodGet, "https://evil.example.com")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow origin header for an unknown origin, got %q", got)
	}
	if !reachedNext {
		t.Error("CORS is enforced by the browser; the request itself still passes through")
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})
	rec, reachedNext := corsRequest(t, m, http.MethodOptions, "https://portal.example.com")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", rec.Code)
	}
	if reachedNext {
		t.Error("preflight requests must not reach the next handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("expected allowed methods on the preflight response")
	}
}
