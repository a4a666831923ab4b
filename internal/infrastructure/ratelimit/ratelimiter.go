package ratelimit

import "time"

// Limiter answers whether a caller identified by key may proceed within
// a sliding window.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) (bool, error)
}
