package testutil

import (
	"testing"

	"go-gin-event-discovery/config"
	"go-gin-event-discovery/internal/database"

	"github.com/redis/go-redis/v9"
)

// SetupRedis 連線測試用 Redis (localhost:6380)，連不上時略過測試
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		t.Skipf("test redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}
