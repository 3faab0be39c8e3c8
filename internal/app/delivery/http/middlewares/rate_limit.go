package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

const authAttemptBlockTime = 5 * time.Minute

// GlobalRateLimit limits every client IP to APP_MAX_REQUESTS per second.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// AuthRateLimit throttles login and signup submissions per client IP.
func (m *Middlewares) AuthRateLimit() func(next http.Handler) http.Handler {
	limiter := NewRateLimiter(m.InternalConfig.App.LoginMaxRequestsPerMinute, time.Minute, authAttemptBlockTime)
	return limiter.Limit
}
