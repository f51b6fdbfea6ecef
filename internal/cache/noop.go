package cache

import (
	"context"
	"time"
)

type noopCache struct{}

// NewNoop returns a PageCache that never hits. Used when redis is not
// configured and as a test substitute.
func NewNoop() PageCache { return noopCache{} }

func (noopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, ErrMiss }

func (noopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (noopCache) Clear(ctx context.Context) error { return nil }
