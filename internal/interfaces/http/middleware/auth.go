package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"zarya/internal/infrastructure/auth"
	"zarya/internal/shared/constants"
	"zarya/internal/shared/utils"
)

// RequireAuth validates the session token from the auth cookie or an
// Authorization bearer header and populates the request context. An
// anonymous request gets a 401 carrying the login URL.
func RequireAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "authentication required", constants.LoginURL)
			c.Abort()
			return
		}

		claims, err := jwtService.Validate(token)
		if err != nil {
			utils.UnauthorizedResponse(c, "invalid or expired session", constants.LoginURL)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Set(constants.ContextKeyIsStaff, claims.IsStaff)

		c.Next()
	}
}

// ResolveSession populates the session context when a valid token is
// present but lets anonymous requests straight through. Public routes
// run it so gates like SiteClosed can recognize staff sessions.
func ResolveSession(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := jwtService.Validate(token); err == nil {
				c.Set(constants.ContextKeyUserID, claims.UserID)
				c.Set(constants.ContextKeyUsername, claims.Username)
				c.Set(constants.ContextKeyIsStaff, claims.IsStaff)
			}
		}
		c.Next()
	}
}

// RequireStaff rejects non-staff sessions. It must run after RequireAuth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			utils.ErrorResponse(c, 403, "staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}

// CurrentUserID returns the authenticated user's ID from the context.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// IsStaff reports whether the authenticated user is staff.
func IsStaff(c *gin.Context) bool {
	if v, ok := c.Get(constants.ContextKeyIsStaff); ok {
		if staff, ok := v.(bool); ok {
			return staff
		}
	}
	return false
}
