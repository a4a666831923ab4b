// Package constants defines values shared across layers.
package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Pagination defaults. NewsPageSize matches the public news grid.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	NewsPageSize    = 9
)

// Gin context keys populated by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyIsStaff  = "is_staff"
)

// SessionCookieName carries the signed session token.
const SessionCookieName = "zarya_session"

// LoginURL is returned in 401 responses so clients know where to send
// the user.
const LoginURL = "/auth/login"

// SimilarItemsLimit caps the "similar" block on content detail pages.
const SimilarItemsLimit = 4

// LatestNewsLimit caps the latest-news block rendered on every page.
const LatestNewsLimit = 3
