package api_middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/logger"
	"golang.org/x/time/rate"
)

type AuthMiddleware struct {
	apiKey string
}

func NewAuthMiddleware(apiKey string) *AuthMiddleware {
	return &AuthMiddleware{apiKey: apiKey}
}

// Authenticate admits requests carrying the configured admin key in X-API-Key.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(commons.APIKeyHeader)

		if apiKey == "" {
			logger.Error("no API key provided")
			commons.RespondWithError(w, http.StatusUnauthorized, "no API key provided")
			return
		}
		if am.apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(am.apiKey)) != 1 {
			logger.Errorf("invalid API key from %s", r.RemoteAddr)
			commons.RespondWithError(w, http.StatusUnauthorized, "invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRateLimitMiddleware shares one token bucket across every request it guards.
func NewRateLimitMiddleware(perSecond float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Every(time.Duration(float64(time.Second)/perSecond)), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Errorf("rate limit exceeded for IP: %s", r.RemoteAddr)
				commons.RespondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
