package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

// RateLimit throttles per client IP. Used on the OTP send endpoint,
// where every accepted request costs an SMS.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[key]
		if !ok {
			l = rate.NewLimiter(r, burst)
			limiters[key] = l
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests,
				apperror.CodeOTPSpam, "Too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
