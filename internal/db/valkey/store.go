// Package valkey implements db.Store via rueidis for Valkey and Redis backends.
package valkey

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/laundromatzat/foliodex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Valkey store.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store implements db.Store via rueidis.
type Store struct {
	client rueidis.Client
}

// NewStore creates a Valkey store via rueidis.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// HGetAllMulti fetches all fields for multiple hashes in a single DoMulti round-trip.
func (s *Store) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cmds := make([]rueidis.Completed, len(keys))
	for i, key := range keys {
		cmds[i] = s.client.B().Hgetall().Key(key).Build()
	}

	results := s.client.DoMulti(ctx, cmds...)
	out := make([]map[string]string, len(results))

	for i, res := range results {
		m, err := res.AsStrMap()
		if err != nil {
			return nil, &db.Error{Op: db.OpHGetAll, Err: fmt.Errorf("key %s: %w", keys[i], err)}
		}
		out[i] = m
	}

	return out, nil
}

// LRange returns list elements between start and stop inclusive.
func (s *Store) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	cmd := s.client.B().Lrange().Key(key).Start(start).Stop(stop).Build()
	vals, err := s.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}
	return vals, nil
}
