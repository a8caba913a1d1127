package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLabelCache 以 Redis hash 保存地名快取。
// namespace 預設為每個 process 產生的 uuid，所以重啟後是新的空快取；
// 多個 process 要共用時才指定固定 namespace。
type RedisLabelCache struct {
	client    *redis.Client
	namespace string
}

func NewRedisLabelCache(client *redis.Client, namespace string) *RedisLabelCache {
	if namespace == "" {
		namespace = uuid.New().String()
	}
	return &RedisLabelCache{
		client:    client,
		namespace: namespace,
	}
}

// 所有地名放在同一個 hash，清除時一次 DEL
func (c *RedisLabelCache) getHashKey() string {
	return fmt.Sprintf("geo:labels:%s", c.namespace)
}

func (c *RedisLabelCache) Namespace() string {
	return c.namespace
}

func (c *RedisLabelCache) Get(ctx context.Context, key string) (string, bool, error) {
	label, err := c.client.HGet(ctx, c.getHashKey(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return label, true, nil
}

func (c *RedisLabelCache) Set(ctx context.Context, key, label string) error {
	return c.client.HSet(ctx, c.getHashKey(), key, label).Err()
}

func (c *RedisLabelCache) Len(ctx context.Context) (int64, error) {
	return c.client.HLen(ctx, c.getHashKey()).Result()
}

// Clear 關閉 session 時刪除整個 namespace
func (c *RedisLabelCache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, c.getHashKey()).Err()
}
