package queue_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/queue"
	apperrors "go-gin-event-discovery/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLabelQueue_PublishFull(t *testing.T) {
	q := queue.NewLabelQueue(1)
	ctx := context.Background()

	require.NoError(t, q.Publish(ctx, model.NewGeoPoint(47.97, 29.37)))
	err := q.Publish(ctx, model.NewGeoPoint(48.0, 29.0))
	assert.ErrorIs(t, err, apperrors.ErrQueueFull)
	assert.Equal(t, 1, q.Len())
}

func TestMemoryLabelQueue_Subscribe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewLabelQueue(4)
	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	point := model.NewGeoPoint(47.97, 29.37)
	require.NoError(t, q.Publish(ctx, point))

	select {
	case d := <-msgs:
		assert.Equal(t, point, d.Point)
		d.Ack()
	case <-ctx.Done():
		t.Fatal("沒有收到訊息")
	}
}

func TestMemoryLabelQueue_NackRequeue(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewLabelQueue(4)
	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	point := model.NewGeoPoint(47.97, 29.37)
	require.NoError(t, q.Publish(ctx, point))

	first := <-msgs
	first.Nack(true)

	select {
	case again := <-msgs:
		assert.Equal(t, point, again.Point)
	case <-ctx.Done():
		t.Fatal("requeue 後沒有再收到")
	}
}

func TestMemoryLabelQueue_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := queue.NewLabelQueue(1)
	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-msgs:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel 沒有關閉")
	}
}
