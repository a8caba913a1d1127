package service

import (
	"context"
	"errors"

	"go-gin-event-discovery/internal/model"
	apperrors "go-gin-event-discovery/pkg/app_errors"
	"go-gin-event-discovery/pkg/logger"

	"go.uber.org/zap"
)

type EngagementService interface {
	// List 本地狀態；還沒載入過時先向後端取一次
	List(ctx context.Context) ([]model.Engagement, error)
	Refresh(ctx context.Context) ([]model.Engagement, error)
	// Toggle snapshot 為 nil 時從活動快照補上，用於 optimistic 顯示
	Toggle(ctx context.Context, eventID string, snapshot *model.Event) (model.ToggleResult, error)
}

// EngagementStore 由 engagement.Store 實作
type EngagementStore interface {
	Load(ctx context.Context) ([]model.Engagement, error)
	Toggle(ctx context.Context, eventID string, snapshot *model.Event) (model.ToggleResult, error)
	Engagements() []model.Engagement
	IsSaved(eventID string) bool
	Loaded() bool
}

// EventFinder 由 DiscoveryService 實作
type EventFinder interface {
	FindEvent(ctx context.Context, eventID string) (*model.Event, error)
}

type EngagementServiceImpl struct {
	store  EngagementStore
	events EventFinder
	log    *zap.Logger
}

func NewEngagementService(store EngagementStore, events EventFinder) EngagementService {
	return &EngagementServiceImpl{
		store:  store,
		events: events,
		log:    logger.WithComponent("service"),
	}
}

func (s *EngagementServiceImpl) List(ctx context.Context) ([]model.Engagement, error) {
	if !s.store.Loaded() {
		return s.store.Load(ctx)
	}
	return s.store.Engagements(), nil
}

func (s *EngagementServiceImpl) Refresh(ctx context.Context) ([]model.Engagement, error) {
	return s.store.Load(ctx)
}

func (s *EngagementServiceImpl) Toggle(ctx context.Context, eventID string, snapshot *model.Event) (model.ToggleResult, error) {
	if eventID == "" {
		return model.ToggleResult{}, apperrors.ErrInvalidInput
	}
	if snapshot != nil && snapshot.ID != "" && snapshot.ID != eventID {
		return model.ToggleResult{}, apperrors.ErrInvalidInput
	}

	// 只有新增需要快照；找不到時照樣送出，只是沒有 optimistic 顯示
	if snapshot == nil && s.events != nil && !s.store.IsSaved(eventID) {
		found, err := s.events.FindEvent(ctx, eventID)
		switch {
		case err == nil:
			snapshot = found
		case errors.Is(err, apperrors.ErrEventNotFound):
			s.log.Debug("event not in snapshot", zap.String("event_id", eventID))
		default:
			s.log.Warn("lookup event snapshot failed", zap.String("event_id", eventID), zap.Error(err))
		}
	}

	return s.store.Toggle(ctx, eventID, snapshot)
}
