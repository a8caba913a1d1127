package database

import (
	"context"
	"fmt"
	"time"

	"go-gin-event-discovery/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis 建立連線並 Ping 一次；連不上時回傳錯誤，由呼叫端決定是否退回記憶體快取
func InitRedis(config *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}
