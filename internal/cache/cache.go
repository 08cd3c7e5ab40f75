// Package cache implements tag based invalidation for cached read models.
// Every cached value is stored under a key and registered with the tags it
// depends on; a mutation invalidates by tag and never by guessing key names.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrMiss = errors.New("cache miss")

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...Tag) error
	// Invalidate removes every key registered under any of the tags and
	// returns how many keys were dropped.
	Invalidate(ctx context.Context, tags ...Tag) (int, error)
	// Generation snapshots the invalidation counters of tags; SetIfCurrent
	// refuses to store a value when any of them moved since.
	Generation(ctx context.Context, tags ...Tag) (Generation, error)
	SetIfCurrent(ctx context.Context, key string, value []byte, ttl time.Duration, gen Generation) (bool, error)
}
