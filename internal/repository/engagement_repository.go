package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go-gin-event-discovery/internal/model"
	apperrors "go-gin-event-discovery/pkg/app_errors"
)

// EngagementRepository 目前登入使用者的收藏紀錄（由 bearer token 決定使用者）
type EngagementRepository interface {
	List(ctx context.Context) ([]model.Engagement, error)
	Create(ctx context.Context, eventID string) (*model.Engagement, error)
	Delete(ctx context.Context, engagementID string) error
}

type EngagementRepositoryImpl struct {
	client *Client
}

func NewEngagementRepository(client *Client) EngagementRepository {
	return &EngagementRepositoryImpl{client: client}
}

type createEngagementRequest struct {
	EventID string `json:"eventId"`
}

func (r *EngagementRepositoryImpl) List(ctx context.Context) ([]model.Engagement, error) {
	var engagements []model.Engagement
	if err := r.client.do(ctx, http.MethodGet, "/engagement", nil, &engagements); err != nil {
		return nil, err
	}
	if engagements == nil {
		engagements = []model.Engagement{}
	}
	return engagements, nil
}

func (r *EngagementRepositoryImpl) Create(ctx context.Context, eventID string) (*model.Engagement, error) {
	if eventID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	var created model.Engagement
	if err := r.client.do(ctx, http.MethodPost, "/engagement", createEngagementRequest{EventID: eventID}, &created); err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("create engagement: empty id in response: %w", apperrors.ErrUnavailable)
	}
	return &created, nil
}

func (r *EngagementRepositoryImpl) Delete(ctx context.Context, engagementID string) error {
	if engagementID == "" {
		return apperrors.ErrInvalidInput
	}
	return r.client.do(ctx, http.MethodDelete, "/engagement/"+url.PathEscape(engagementID), nil, nil)
}
