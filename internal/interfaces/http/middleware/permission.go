package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"zarya/internal/infrastructure/permission"
	"zarya/internal/shared/logger"
	"zarya/internal/shared/utils"
)

// Permission enforces the casbin policy for the matched route. Staff
// users are checked through the staff role; everyone else through their
// user subject. It must run after RequireAuth.
func Permission(enforcer *permission.Enforcer, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := fmt.Sprintf("user:%d", CurrentUserID(c))
		if IsStaff(c) {
			subject = permission.RoleStaff
		}

		allowed, err := enforcer.Enforce(subject, c.FullPath(), c.Request.Method)
		if err != nil {
			log.Errorw("permission check failed", "subject", subject, "path", c.FullPath(), "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusForbidden, "access denied")
			c.Abort()
			return
		}

		c.Next()
	}
}
