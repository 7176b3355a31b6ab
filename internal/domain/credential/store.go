package credential

import (
	"context"
	"time"
)

// Store persists credential entries keyed by token digest. Implementations
// must be safe for concurrent use.
type Store interface {
	// Put stores an entry under the given digest.
	Put(ctx context.Context, digest string, e Entry) error

	// Get returns the entry for a digest, or nil when absent.
	Get(ctx context.Context, digest string) (*Entry, error)

	// Delete removes an entry. Returns whether it existed.
	Delete(ctx context.Context, digest string) (bool, error)

	// DeleteExpired removes all entries expired as of now and returns the
	// count. Backends with native TTL expiry may report zero.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
