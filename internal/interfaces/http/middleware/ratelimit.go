package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"zarya/internal/infrastructure/ratelimit"
	"zarya/internal/shared/config"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

// RateLimit throttles write endpoints per client IP. When redis is
// unreachable the request is allowed through; throttling is protection,
// not a dependency.
func RateLimit(limiter ratelimit.Limiter, cfg config.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	window := time.Duration(cfg.WindowSeconds) * time.Second

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := limiter.Allow(key, cfg.Limit, window)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
