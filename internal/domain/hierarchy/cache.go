package hierarchy

import "context"

// CacheInvalidator is implemented by caching Store decorators. Callers that
// mutate the manager relation must invalidate every affected manager id, or
// access decisions may stay stale past the cache TTL.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, managerIDs ...string) error
}

// NopInvalidator satisfies CacheInvalidator when no cache is configured.
type NopInvalidator struct{}

func (NopInvalidator) Invalidate(ctx context.Context, managerIDs ...string) error { return nil }
