package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 计数缓存过期时间
const countExpireAt = 5 * time.Minute

// CountCache 点赞/评论计数缓存。写路径删 key，读路径回源后写入；
// redis 不可用时一律当未命中处理，计数仍以数据库为准
type CountCache struct {
	redis *redis.Client
}

func NewCountCache(rds *redis.Client) *CountCache {
	return &CountCache{rds}
}

// GetLikeCount 读点赞计数，第二个返回值表示是否命中
func (c *CountCache) GetLikeCount(ctx context.Context, recipeID uint64) (int64, bool) {
	return c.get(ctx, c.likeKey(recipeID))
}

func (c *CountCache) SetLikeCount(ctx context.Context, recipeID uint64, count int64) {
	c.set(ctx, c.likeKey(recipeID), count)
}

// DelLikeCount 点赞写路径失效计数
func (c *CountCache) DelLikeCount(ctx context.Context, recipeID uint64) {
	c.redis.Del(ctx, c.likeKey(recipeID))
}

// GetCommentCount 读评论计数，第二个返回值表示是否命中
func (c *CountCache) GetCommentCount(ctx context.Context, recipeID uint64) (int64, bool) {
	return c.get(ctx, c.commentKey(recipeID))
}

func (c *CountCache) SetCommentCount(ctx context.Context, recipeID uint64, count int64) {
	c.set(ctx, c.commentKey(recipeID), count)
}

// DelCommentCount 评论写路径失效计数
func (c *CountCache) DelCommentCount(ctx context.Context, recipeID uint64) {
	c.redis.Del(ctx, c.commentKey(recipeID))
}

func (c *CountCache) get(ctx context.Context, key string) (int64, bool) {
	n, err := c.redis.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *CountCache) set(ctx context.Context, key string, count int64) {
	c.redis.Set(ctx, key, count, countExpireAt)
}

// social:count:likes:10
func (c *CountCache) likeKey(recipeID uint64) string {
	return fmt.Sprintf("social:count:likes:%d", recipeID)
}

func (c *CountCache) commentKey(recipeID uint64) string {
	return fmt.Sprintf("social:count:comments:%d", recipeID)
}
