package queue

import (
	"context"

	"go-gin-event-discovery/internal/model"
	apperrors "go-gin-event-discovery/pkg/app_errors"
)

type Delivery struct {
	Point model.GeoPoint
	Ack   func()
	Nack  func(requeue bool)
}

// LabelQueue 待反查地名的座標
type LabelQueue interface {
	// 發送座標到隊列，不阻塞呼叫端
	Publish(ctx context.Context, point model.GeoPoint) error
	// 訂閱隊列
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

type MemoryLabelQueue struct {
	ch chan model.GeoPoint
}

func NewLabelQueue(bufferSize int) *MemoryLabelQueue {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &MemoryLabelQueue{
		ch: make(chan model.GeoPoint, bufferSize),
	}
}

// Publish 隊列滿時直接回 ErrQueueFull，feed 請求不等待
func (q *MemoryLabelQueue) Publish(ctx context.Context, point model.GeoPoint) error {
	select {
	case q.ch <- point:
		return nil
	default:
		return apperrors.ErrQueueFull
	}
}

func (q *MemoryLabelQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case point := <-q.ch:
				d := Delivery{
					Point: point,
					Ack:   func() {},
					Nack: func(requeue bool) {
						if requeue {
							_ = q.Publish(ctx, point)
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *MemoryLabelQueue) Len() int {
	return len(q.ch)
}
