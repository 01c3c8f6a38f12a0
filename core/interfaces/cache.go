// Package interfaces defines the contracts the core consumes from its environment.
// Concrete implementations live under infrastructure/ and are injected through
// Dependencies, so every core package can be exercised with fakes.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("key not found")

// Cache is the key/value contract behind persisted user preferences
// (selected city, district, league). Content is never cached through it.
//
// Example usage:
//
//	err := store.Set(ctx, "pref:city", []byte("yozgat"), 0)
//	city, err := store.Get(ctx, "pref:city")
type Cache interface {
	// Get returns the stored value, or ErrCacheMiss when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl keeps the value indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
