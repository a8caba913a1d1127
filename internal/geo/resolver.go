package geo

import (
	"context"
	"time"

	"go-gin-event-discovery/internal/model"
	apperrors "go-gin-event-discovery/pkg/app_errors"
	"go-gin-event-discovery/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultLookupTimeout = 5 * time.Second

// Resolver 將座標轉成地名並快取。
// 同一個 key 同時間最多只有一個 provider 呼叫，其他呼叫者等待同一個結果。
// 反查失敗時也會快取座標字串，整個 session 不再重試。
type Resolver struct {
	provider Provider
	cache    LabelCache
	group    singleflight.Group
	timeout  time.Duration
	log      *zap.Logger
}

func NewResolver(provider Provider, cache LabelCache, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &Resolver{
		provider: provider,
		cache:    cache,
		timeout:  timeout,
		log:      logger.WithComponent("geo"),
	}
}

// Resolve 回傳座標的顯示字串。只有座標不合法或 ctx 結束時才回傳錯誤；
// ctx 結束不會中斷進行中的反查，結果仍會寫入快取。
func (r *Resolver) Resolve(ctx context.Context, point model.GeoPoint) (string, error) {
	if !point.Valid() {
		return "", apperrors.ErrInvalidCoordinates
	}

	key := CoordKey(point)
	if label, ok := r.lookup(ctx, key); ok {
		return label, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key, func() (interface{}, error) {
		return r.resolve(detached, key, point), nil
	})

	select {
	case res := <-ch:
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Peek 只查快取，不觸發反查
func (r *Resolver) Peek(ctx context.Context, point model.GeoPoint) (string, bool) {
	if !point.Valid() {
		return "", false
	}
	return r.lookup(ctx, CoordKey(point))
}

func (r *Resolver) resolve(ctx context.Context, key string, point model.GeoPoint) string {
	// 等待 singleflight 期間前一輪可能已經寫入快取
	if label, ok := r.lookup(ctx, key); ok {
		return label
	}

	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var label string
	places, err := r.provider.ReverseGeocode(lookupCtx, point.Latitude, point.Longitude)
	if err != nil {
		r.log.Warn("reverse geocode failed, caching fallback", zap.String("key", key), zap.Error(err))
		label = FallbackLabel(point)
	} else {
		label = ComposeLabel(places, point)
	}

	if err := r.cache.Set(ctx, key, label); err != nil {
		r.log.Error("cache label failed", zap.String("key", key), zap.Error(err))
	}
	return label
}

func (r *Resolver) lookup(ctx context.Context, key string) (string, bool) {
	label, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn("label cache read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return label, ok
}
