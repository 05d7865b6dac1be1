package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paulchambaz/illiad/internal/shared"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("AllowAuthHeader", func(t *testing.T) {
		handler := AllowAuthHeader()(okHandler())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audiobooks", nil))

		if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Auth" {
			t.Errorf("expected Auth in allowed headers, got %q", got)
		}
	})

	t.Run("RateLimit", func(t *testing.T) {
		handler := RateLimit(1, 2)(okHandler())

		statuses := make([]int, 0, 4)
		for range 4 {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.1:51234"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			statuses = append(statuses, rec.Code)
		}

		if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
			t.Errorf("burst requests must pass, got %v", statuses)
		}
		if statuses[3] != http.StatusTooManyRequests {
			t.Errorf("expected 429 once the burst is spent, got %v", statuses)
		}
	})

	t.Run("RateLimitIsPerClient", func(t *testing.T) {
		handler := RateLimit(1, 1)(okHandler())

		send := func(addr string) int {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			return rec.Code
		}

		if got := send("10.0.0.1:51234"); got != http.StatusOK {
			t.Fatalf("first client's burst must pass, got %d", got)
		}
		if got := send("10.0.0.1:51235"); got != http.StatusTooManyRequests {
			t.Errorf("same client past its burst must be rejected, got %d", got)
		}
		if got := send("10.0.0.2:51234"); got != http.StatusOK {
			t.Errorf("a different client must not be throttled, got %d", got)
		}
	})

	t.Run("RequestLoggerPreservesStatus", func(t *testing.T) {
		logger := shared.NewLogger(io.Discard)
		handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audiobooks", nil))

		if rec.Code != http.StatusTeapot {
			t.Errorf("expected status to pass through, got %d", rec.Code)
		}
	})
}
