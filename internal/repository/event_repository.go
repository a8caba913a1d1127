package repository

import (
	"context"
	"errors"
	"net/http"

	"go-gin-event-discovery/internal/model"
	apperrors "go-gin-event-discovery/pkg/app_errors"
)

type EventRepository interface {
	List(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
}

type EventRepositoryImpl struct {
	client *Client
}

func NewEventRepository(client *Client) EventRepository {
	return &EventRepositoryImpl{
		client: client,
	}
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.client.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		// 後端用 404 表示沒有活動時，當成空清單
		if errors.Is(err, apperrors.ErrNotFound) {
			return []model.Event{}, nil
		}
		return nil, err
	}
	if events == nil {
		events = []model.Event{}
	}
	return events, nil
}

// FindByID 後端沒有單筆查詢的 endpoint，從清單中找
func (r *EventRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}
