package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb, err := Connect(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewRedis(rdb, "test:"+uuid.NewString()+":")

	var got []string
	hit, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "k", []string{"a", "b"}, time.Minute))

	hit, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	require.NoError(t, c.Set(context.Background(), "k", 1, time.Second))

	var v int
	hit, err := c.Get(context.Background(), "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
}
