// Package cache stores JSON-encoded values under string keys with a TTL.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get decodes the value stored under key into dst. It reports false on a miss.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Noop never holds anything.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
