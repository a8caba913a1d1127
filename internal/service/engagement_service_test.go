package service_test

import (
	"context"
	"testing"

	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/service"
	"go-gin-event-discovery/internal/service/mocks"
	apperrors "go-gin-event-discovery/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("loads on first access", func(t *testing.T) {
		store := mocks.NewMockEngagementStore(t)
		svc := service.NewEngagementService(store, nil)

		store.EXPECT().Loaded().Return(false).Once()
		store.EXPECT().Load(mock.Anything).Return([]model.Engagement{{ID: "eng-1"}}, nil).Once()

		list, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("returns local state after load", func(t *testing.T) {
		store := mocks.NewMockEngagementStore(t)
		svc := service.NewEngagementService(store, nil)

		store.EXPECT().Loaded().Return(true).Once()
		store.EXPECT().Engagements().Return([]model.Engagement{{ID: "eng-1"}, {ID: "eng-2"}}).Once()

		list, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestEngagementService_Refresh(t *testing.T) {
	store := mocks.NewMockEngagementStore(t)
	svc := service.NewEngagementService(store, nil)

	store.EXPECT().Load(mock.Anything).Return(nil, apperrors.ErrUnauthorized).Once()

	_, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestEngagementService_Toggle(t *testing.T) {
	ctx := context.Background()

	t.Run("fills snapshot from discovery", func(t *testing.T) {
		store := mocks.NewMockEngagementStore(t)
		finder := mocks.NewMockDiscoveryService(t)
		svc := service.NewEngagementService(store, finder)

		event := &model.Event{ID: "e1", Title: "Jazz Night"}
		store.EXPECT().IsSaved("e1").Return(false).Once()
		finder.EXPECT().FindEvent(mock.Anything, "e1").Return(event, nil).Once()
		store.EXPECT().Toggle(mock.Anything, "e1", event).
			Return(model.ToggleResult{Action: model.ToggleActionAdded, EventID: "e1"}, nil).Once()

		result, err := svc.Toggle(ctx, "e1", nil)
		require.NoError(t, err)
		assert.Equal(t, model.ToggleActionAdded, result.Action)
	})

	t.Run("removal skips lookup", func(t *testing.T) {
		store := mocks.NewMockEngagementStore(t)
		finder := mocks.NewMockDiscoveryService(t)
		svc := service.NewEngagementService(store, finder)

		store.EXPECT().IsSaved("e1").Return(true).Once()
		store.EXPECT().Toggle(mock.Anything, "e1", (*model.Event)(nil)).
			Return(model.ToggleResult{Action: model.ToggleActionRemoved, EventID: "e1"}, nil).Once()

		result, err := svc.Toggle(ctx, "e1", nil)
		require.NoError(t, err)
		assert.Equal(t, model.ToggleActionRemoved, result.Action)
	})

	t.Run("lookup miss still toggles", func(t *testing.T) {
		store := mocks.NewMockEngagementStore(t)
		finder := mocks.NewMockDiscoveryService(t)
		svc := service.NewEngagementService(store, finder)

		store.EXPECT().IsSaved("e9").Return(false).Once()
		finder.EXPECT().FindEvent(mock.Anything, "e9").Return(nil, apperrors.ErrEventNotFound).Once()
		store.EXPECT().Toggle(mock.Anything, "e9", (*model.Event)(nil)).
			Return(model.ToggleResult{}, apperrors.ErrNotFound).Once()

		_, err := svc.Toggle(ctx, "e9", nil)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("provided snapshot is passed through", func(t *testing.T) {
		store := mocks.NewMockEngagementStore(t)
		svc := service.NewEngagementService(store, mocks.NewMockDiscoveryService(t))

		event := &model.Event{ID: "e1"}
		store.EXPECT().Toggle(mock.Anything, "e1", event).Return(model.ToggleResult{EventID: "e1"}, nil).Once()

		_, err := svc.Toggle(ctx, "e1", event)
		require.NoError(t, err)
	})

	t.Run("snapshot id mismatch", func(t *testing.T) {
		store := mocks.NewMockEngagementStore(t)
		svc := service.NewEngagementService(store, nil)

		_, err := svc.Toggle(ctx, "e1", &model.Event{ID: "e2"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("pending error surfaces", func(t *testing.T) {
		store := mocks.NewMockEngagementStore(t)
		svc := service.NewEngagementService(store, nil)

		store.EXPECT().Toggle(mock.Anything, "e1", (*model.Event)(nil)).Return(model.ToggleResult{}, apperrors.ErrEngagementPending).Once()

		_, err := svc.Toggle(ctx, "e1", nil)
		assert.ErrorIs(t, err, apperrors.ErrEngagementPending)
	})
}
