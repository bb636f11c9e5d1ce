package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache used by the catalog
// repositories. Implementations must treat a miss as (false, nil), never as
// an error, so callers can always fall back to the database.
type Cache interface {
	// Get loads the value stored under key into dest.
	// Returns (true, nil) on a hit; dest is untouched on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching the glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
