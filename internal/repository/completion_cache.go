package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// 空集合也要能缓存，所以每个 key 里都放一个占位成员
const completionSentinel = "__loaded__"

// CompletionCache 缓存用户已完成的作业ID集合。Redis 为 nil 时所有操作都视为未命中
type CompletionCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewCompletionCache(rdb *redis.Client, ttl time.Duration) *CompletionCache {
	return &CompletionCache{Redis: rdb, TTL: ttl}
}

func completionKey(userID string) string {
	return fmt.Sprintf("progress:completed_assignments:%s", userID)
}

func (c *CompletionCache) enabled() bool {
	return c != nil && c.Redis != nil
}

// Get 第二个返回值表示是否命中。没有占位成员的 key 只是 Add 留下的增量，不算命中
func (c *CompletionCache) Get(ctx context.Context, userID string) ([]string, bool, error) {
	if !c.enabled() {
		return nil, false, nil
	}
	members, err := c.Redis.SMembers(ctx, completionKey(userID)).Result()
	if err != nil {
		return nil, false, err
	}
	loaded := false
	ids := make([]string, 0, len(members))
	for _, m := range members {
		if m == completionSentinel {
			loaded = true
			continue
		}
		ids = append(ids, m)
	}
	if !loaded {
		return nil, false, nil
	}
	return ids, true, nil
}

// Set 把从数据库读到的集合并入缓存。已完成集合只增不减，
// 所以并集写入不会覆盖并发 Add 进来的新ID
func (c *CompletionCache) Set(ctx context.Context, userID string, ids []string) error {
	if !c.enabled() {
		return nil
	}
	members := make([]interface{}, 0, len(ids)+1)
	members = append(members, completionSentinel)
	for _, id := range ids {
		members = append(members, id)
	}
	return c.add(ctx, userID, members)
}

// Add 记录一次作业提交
func (c *CompletionCache) Add(ctx context.Context, userID, assignmentID string) error {
	if !c.enabled() {
		return nil
	}
	return c.add(ctx, userID, []interface{}{assignmentID})
}

func (c *CompletionCache) add(ctx context.Context, userID string, members []interface{}) error {
	key := completionKey(userID)
	_, err := c.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, members...)
		if c.TTL > 0 {
			pipe.Expire(ctx, key, c.TTL)
		}
		return nil
	})
	return err
}

// Invalidate 丢弃缓存，下次读时从数据库重建
func (c *CompletionCache) Invalidate(ctx context.Context, userID string) error {
	if !c.enabled() {
		return nil
	}
	return c.Redis.Del(ctx, completionKey(userID)).Err()
}

func (c *CompletionCache) Ping(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	return c.Redis.Ping(ctx).Err()
}
