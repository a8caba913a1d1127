package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gin-event-discovery/config"
	"go-gin-event-discovery/internal/cache"
	"go-gin-event-discovery/internal/database"
	"go-gin-event-discovery/internal/engagement"
	"go-gin-event-discovery/internal/geo"
	"go-gin-event-discovery/internal/handler"
	"go-gin-event-discovery/internal/queue"
	"go-gin-event-discovery/internal/repository"
	"go-gin-event-discovery/internal/service"
	"go-gin-event-discovery/internal/worker"
	"go-gin-event-discovery/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	defer logger.Sync()

	log := logger.WithComponent("server")
	if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
		log.Warn("unknown LOG_LEVEL, keeping info", zap.String("level", cfg.Server.LogLevel))
	}
	gin.SetMode(cfg.Server.GinMode)
	log.Info("starting", zap.Stringer("log_level", logger.Level()), zap.String("gin_mode", cfg.Server.GinMode))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := cfg.Server.Location()
	now := func() time.Time { return time.Now().In(loc) }

	client := repository.NewClient(cfg.API)
	eventRepo := repository.NewEventRepository(client)
	categoryRepo := repository.NewCategoryRepository(client)
	engagementRepo := repository.NewEngagementRepository(client)
	reviewRepo := repository.NewReviewRepository(client)

	labels := newLabelBackend(cfg, log)
	defer labels.close()

	provider := geo.NewNominatimProvider(cfg.Geocoder.URL, cfg.Geocoder.UserAgent, cfg.Geocoder.Timeout)
	resolver := geo.NewResolver(provider, labels.cache, cfg.Geocoder.Timeout)

	store := engagement.NewStore(engagementRepo, engagement.Options{
		SerializePerEvent: cfg.Engagement.SerializeToggles,
		Now:               now,
	})
	if _, err := store.Load(ctx); err != nil {
		// 之後第一次 GET /engagements 會再試
		log.Warn("initial engagement load failed", zap.Error(err))
	}

	discoveryService := service.NewDiscoveryService(eventRepo, categoryRepo, resolver, labels.queue, store, now)
	engagementService := service.NewEngagementService(store, discoveryService)
	reviewService := service.NewReviewService(reviewRepo, discoveryService, store, now)

	labelWorker := worker.NewLabelWorker(resolver, labels.queue, cfg.Prefetch.Workers)
	if err := labelWorker.Start(ctx); err != nil {
		log.Fatal("start label worker failed", zap.Error(err))
	}

	router := gin.New()
	router.Use(handler.Recovery(), handler.RequestLogging())
	handler.NewHealthHandler(labels.checks).RegisterRoutes(router)
	handler.NewFeedHandler(discoveryService, loc).RegisterRoutes(router)
	handler.NewEngagementHandler(engagementService).RegisterRoutes(router)
	handler.NewReviewHandler(reviewService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	labelWorker.Wait()

	// 記憶體隊列裡還沒處理的座標會隨 process 結束遺失
	if mq, ok := labels.queue.(*queue.MemoryLabelQueue); ok {
		if pending := mq.Len(); pending > 0 {
			log.Info("prefetch backlog dropped", zap.Int("pending", pending))
		}
	}
}

// labelBackend 地名快取與 prefetch 隊列；REDIS_ENABLED 且連得上時用 Redis，否則用記憶體
type labelBackend struct {
	cache  geo.LabelCache
	queue  queue.LabelQueue
	checks map[string]handler.HealthCheck
	close  func()
}

func newLabelBackend(cfg *config.Config, log *zap.Logger) *labelBackend {
	memory := &labelBackend{
		cache:  cache.NewMemoryLabelCache(),
		queue:  queue.NewLabelQueue(cfg.Prefetch.BufferSize),
		checks: map[string]handler.HealthCheck{},
		close:  func() {},
	}
	if !cfg.Redis.Enabled {
		return memory
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, using in-memory label cache", zap.Error(err))
		return memory
	}

	redisCache := cache.NewRedisLabelCache(rdb, cfg.Redis.LabelNamespace)
	redisQueue, err := queue.NewRedisStreamLabelQueue(rdb, redisCache.Namespace(), "", nil)
	if err != nil {
		log.Warn("redis stream unavailable, using in-memory prefetch queue", zap.Error(err))
	}

	backend := &labelBackend{
		cache: redisCache,
		queue: memory.queue,
		checks: map[string]handler.HealthCheck{
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	}
	if redisQueue != nil {
		backend.queue = redisQueue
	}
	backend.close = func() {
		// 沒有指定 namespace 時快取只屬於這個 process
		if cfg.Redis.LabelNamespace == "" {
			cleanup(redisCache, redisQueue, log)
		}
		if err := rdb.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			log.Warn("close redis failed", zap.Error(err))
		}
	}
	log.Info("label cache backed by redis", zap.String("namespace", redisCache.Namespace()))
	return backend
}

func cleanup(labels *cache.RedisLabelCache, stream *queue.RedisStreamLabelQueue, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := labels.Clear(ctx); err != nil {
		log.Warn("clear label cache failed", zap.Error(err))
	}
	if stream != nil {
		if err := stream.Clear(ctx); err != nil {
			log.Warn("clear label stream failed", zap.Error(err))
		}
	}
}
