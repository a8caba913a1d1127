package worker

import (
	"context"
	"errors"
	"sync"

	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/queue"
	apperrors "go-gin-event-discovery/pkg/app_errors"
	"go-gin-event-discovery/pkg/logger"

	"go.uber.org/zap"
)

// LabelResolver 由 geo.Resolver 實作
type LabelResolver interface {
	Resolve(ctx context.Context, point model.GeoPoint) (string, error)
}

// LabelWorker 從隊列取出座標並預先反查地名，讓下一次 feed 直接命中快取
type LabelWorker struct {
	resolver LabelResolver
	queue    queue.LabelQueue
	workers  int
	log      *zap.Logger
	wg       sync.WaitGroup
}

func NewLabelWorker(resolver LabelResolver, queue queue.LabelQueue, workers int) *LabelWorker {
	if workers <= 0 {
		workers = 1
	}
	return &LabelWorker{
		resolver: resolver,
		queue:    queue,
		workers:  workers,
		log:      logger.WithComponent("worker"),
	}
}

// Start 啟動 workers 個 goroutine，ctx 結束時停止
func (w *LabelWorker) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for msg := range msgs {
				w.handle(ctx, msg)
			}
		}()
	}
	return nil
}

// Wait 等待所有 goroutine 結束
func (w *LabelWorker) Wait() {
	w.wg.Wait()
}

func (w *LabelWorker) handle(ctx context.Context, msg queue.Delivery) {
	_, err := w.resolver.Resolve(ctx, msg.Point)
	switch {
	case err == nil:
		msg.Ack()
	case errors.Is(err, apperrors.ErrInvalidCoordinates):
		// 重試也不會成功
		w.log.Warn("drop invalid point", zap.Float64("lat", msg.Point.Latitude), zap.Float64("lng", msg.Point.Longitude))
		msg.Nack(false)
	default:
		// ctx 結束；Resolver 本身失敗時會快取座標字串，不會走到這裡
		msg.Nack(true)
	}
}
