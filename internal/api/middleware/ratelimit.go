package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/todoapi/todoapi/internal/api/response"
	"github.com/todoapi/todoapi/internal/domain"
)

// RateLimit returns middleware that rejects requests with 429 once the
// limiter runs out of tokens. The limit applies to the whole server.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				response.Error(w, domain.NewRateLimitedError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
