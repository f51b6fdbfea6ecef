package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// PageCache stores rendered page bodies for a bounded time. Writes to the
// underlying data never invalidate entries; staleness up to the TTL is
// accepted. Clear is an administrative operation.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Clear(ctx context.Context) error
}
