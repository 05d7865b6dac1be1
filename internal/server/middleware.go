package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/paulchambaz/illiad/internal/shared"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogger returns a [Middleware] logging one line per request with a
// generated request id, method, path, response status, and duration.
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("request",
				"id", shared.GenerateID(),
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// AllowAuthHeader returns a [Middleware] advertising the Auth header to
// cross-origin clients on every response.
func AllowAuthHeader() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Headers", "Auth")
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit returns a [Middleware] rejecting requests beyond the given
// sustained rate and burst with 429. Applied to the credential endpoints to
// slow down password guessing.
//
// The limit is tracked per client IP (the host part of RemoteAddr), so one
// client exhausting its burst never throttles another. Limiter entries are
// kept for the lifetime of the middleware.
func RateLimit(rps float64, burst int) Middleware {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	limiterFor := func(addr string) *rate.Limiter {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}

		mu.Lock()
		defer mu.Unlock()

		limiter, ok := limiters[host]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[host] = limiter
		}
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiterFor(r.RemoteAddr).Allow() {
				writeJSON(w, http.StatusTooManyRequests, cantAuth())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
