package service

import (
	"context"
	"time"
)

// AllowlistCache is a read-through cache for admin allow-list membership.
// Implementations must be safe to call when the backing cache is
// unavailable; a miss or cache error simply falls through to the database.
type AllowlistCache interface {
	// Get reports cached membership for an email. The second return
	// value is false when the email is not cached.
	Get(ctx context.Context, email string) (allowed bool, ok bool)

	// Set caches membership for an email with a TTL.
	Set(ctx context.Context, email string, allowed bool, ttl time.Duration)

	// Invalidate drops the cached entry for an email. Called whenever
	// the allow-list changes.
	Invalidate(ctx context.Context, email string)
}
