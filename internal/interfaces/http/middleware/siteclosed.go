package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zarya/internal/domain/page"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

// SiteClosed gates public routes behind the maintenance flag in site
// settings. Staff sessions pass through so they can keep working while
// the site is closed.
func SiteClosed(pageRepo page.Repository, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := pageRepo.LoadSettings(c.Request.Context())
		if err != nil {
			// The gate never takes the site down on its own.
			log.Warnw("failed to load site settings", "error", err)
			c.Next()
			return
		}

		if settings.SiteClosed && !IsStaff(c) {
			message := settings.ClosedMessage
			if message == "" {
				message = "the site is temporarily closed for maintenance"
			}
			utils.ErrorResponse(c, http.StatusServiceUnavailable, message)
			c.Abort()
			return
		}

		c.Next()
	}
}
