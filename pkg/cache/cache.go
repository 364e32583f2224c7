// Package cache provides pluggable byte caches used to memoize rendered
// graph artifacts (keyed by a hash of the DOT text that produced them).
//
// Three backends are available:
//   - [FileCache]: directory-backed, the default for CLI use
//   - [RedisCache]: shared cache for long-running server deployments
//   - [NullCache]: disables caching entirely
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Key derives a cache key from a namespace and the content it identifies.
func Key(namespace string, content []byte) string {
	sum := sha256.Sum256(content)
	return namespace + ":" + hex.EncodeToString(sum[:])
}
