package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestCache(t *testing.T) *CountCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCountCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestCountCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, ok := c.GetLikeCount(ctx, 10)
	assert.False(t, ok)

	c.SetLikeCount(ctx, 10, 3)
	n, ok := c.GetLikeCount(ctx, 10)
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)

	c.DelLikeCount(ctx, 10)
	_, ok = c.GetLikeCount(ctx, 10)
	assert.False(t, ok)
}

func TestCountCacheKeysAreIndependent(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.SetLikeCount(ctx, 10, 1)
	c.SetCommentCount(ctx, 10, 2)

	likes, ok := c.GetLikeCount(ctx, 10)
	assert.True(t, ok)
	assert.Equal(t, int64(1), likes)

	comments, ok := c.GetCommentCount(ctx, 10)
	assert.True(t, ok)
	assert.Equal(t, int64(2), comments)
}

func TestCountCacheDegradesWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewCountCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	mr.Close()

	ctx := context.Background()
	c.SetLikeCount(ctx, 10, 3)

	_, ok := c.GetLikeCount(ctx, 10)
	assert.False(t, ok)
}
