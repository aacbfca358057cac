// Package db defines the storage contract the catalog repository consumes.
package db

import (
	"context"
	"time"
)

// Store is the full contract a key/value catalog backend must satisfy.
type Store interface {
	Pinger
	HashReader
	ListReader

	// Close releases client resources.
	Close()
	// WaitForReady polls connectivity until the store responds or timeout expires.
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks backend connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashReader reads hash records.
type HashReader interface {
	// HGetAllMulti fetches all fields for multiple hashes in one round-trip.
	// The result preserves key order. Missing keys yield an empty map.
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
}

// ListReader reads list records.
type ListReader interface {
	// LRange returns list elements between start and stop inclusive.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}
