package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-gin-event-discovery/internal/cache"
	"go-gin-event-discovery/internal/geo"
	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/queue"
	repomocks "go-gin-event-discovery/internal/repository/mocks"
	"go-gin-event-discovery/internal/service"
	apperrors "go-gin-event-discovery/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC) // 星期三

type stubProvider struct {
	mu    sync.Mutex
	calls int
}

func (p *stubProvider) ReverseGeocode(ctx context.Context, latitude, longitude float64) ([]geo.Place, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return []geo.Place{{City: "Salmiya", Country: "Kuwait"}}, nil
}

// flippingResolver Peek 第一次 miss，之後都 hit
type flippingResolver struct {
	mu    sync.Mutex
	peeks int
	label string
}

func (r *flippingResolver) Resolve(ctx context.Context, point model.GeoPoint) (string, error) {
	return r.label, nil
}

func (r *flippingResolver) Peek(ctx context.Context, point model.GeoPoint) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.peeks++
	if r.peeks == 1 {
		return "", false
	}
	return r.label, true
}

type savedSet map[string]struct{}

func (s savedSet) SavedSet() map[string]struct{} { return s }

func point(lng, lat float64) *model.Location {
	p := model.NewGeoPoint(lng, lat)
	return &model.Location{Point: &p}
}

func sampleEvents() []model.Event {
	return []model.Event{
		{ID: "e1", Title: "Jazz Night", Date: "2024-06-14T19:00:00.000Z", CategoryID: "music", Location: point(48.0, 29.33)},
		{ID: "e2", Title: "Food Fair", Date: "2024-06-13T12:00:00.000Z", CategoryID: "food", PlaceName: "The Avenues"},
		{ID: "e3", Title: "Art Walk", Date: "2024-06-15T09:00:00.000Z", Address: "Gulf Road"},
	}
}

func sampleCategories() []model.Category {
	return []model.Category{{ID: "food", Key: "food", Name: "Food"}, {ID: "music", Key: "music", Name: "Music"}}
}

type discoveryFixture struct {
	events     *repomocks.MockEventRepository
	categories *repomocks.MockCategoryRepository
	provider   *stubProvider
	resolver   *geo.Resolver
	queue      *queue.MemoryLabelQueue
	svc        service.DiscoveryService
}

func newDiscoveryFixture(t *testing.T, saved savedSet) *discoveryFixture {
	f := &discoveryFixture{
		events:     repomocks.NewMockEventRepository(t),
		categories: repomocks.NewMockCategoryRepository(t),
		provider:   &stubProvider{},
		queue:      queue.NewLabelQueue(8),
	}
	f.resolver = geo.NewResolver(f.provider, cache.NewMemoryLabelCache(), time.Second)
	f.svc = service.NewDiscoveryService(f.events, f.categories, f.resolver, f.queue, saved, func() time.Time { return fixedNow })
	return f
}

func TestDiscoveryService_Feed(t *testing.T) {
	ctx := context.Background()

	t.Run("unresolved coordinates fall back and get queued", func(t *testing.T) {
		f := newDiscoveryFixture(t, savedSet{"e2": {}})
		f.events.EXPECT().List(mock.Anything).Return(sampleEvents(), nil).Once()
		f.categories.EXPECT().List(mock.Anything).Return(sampleCategories(), nil).Once()

		items, err := f.svc.Feed(ctx, model.DefaultFilterCriteria(), nil)
		require.NoError(t, err)
		require.Len(t, items, 3)

		// 依日期排序
		assert.Equal(t, "e2", items[0].Event.ID)
		assert.Equal(t, "e1", items[1].Event.ID)
		assert.Equal(t, "e3", items[2].Event.ID)

		assert.Equal(t, "The Avenues", items[0].LocationLabel)
		assert.True(t, items[0].Saved)
		assert.Equal(t, "29.33000, 48.00000", items[1].LocationLabel)
		assert.False(t, items[1].LocationResolved)
		assert.Equal(t, "Gulf Road", items[2].LocationLabel)

		assert.Equal(t, 1, f.queue.Len())
		assert.Equal(t, 0, f.provider.calls)
	})

	t.Run("cached label is used", func(t *testing.T) {
		f := newDiscoveryFixture(t, savedSet{})
		_, err := f.resolver.Resolve(ctx, model.NewGeoPoint(48.0, 29.33))
		require.NoError(t, err)

		f.events.EXPECT().List(mock.Anything).Return(sampleEvents(), nil).Once()
		f.categories.EXPECT().List(mock.Anything).Return(sampleCategories(), nil).Once()

		items, err := f.svc.Feed(ctx, model.DefaultFilterCriteria(), nil)
		require.NoError(t, err)
		assert.Equal(t, "Salmiya, Kuwait", items[1].LocationLabel)
		assert.True(t, items[1].LocationResolved)
		assert.Equal(t, 0, f.queue.Len())
	})

	t.Run("distance from origin", func(t *testing.T) {
		f := newDiscoveryFixture(t, savedSet{})
		f.events.EXPECT().List(mock.Anything).Return(sampleEvents(), nil).Once()
		f.categories.EXPECT().List(mock.Anything).Return(sampleCategories(), nil).Once()

		origin := model.NewGeoPoint(48.0, 29.33)
		items, err := f.svc.Feed(ctx, model.DefaultFilterCriteria(), &origin)
		require.NoError(t, err)
		assert.Equal(t, "0m away", items[1].Distance)
		assert.Equal(t, "< 1 min", items[1].TravelTime)
		assert.Empty(t, items[0].Distance)
	})

	t.Run("category filter", func(t *testing.T) {
		f := newDiscoveryFixture(t, savedSet{})
		f.events.EXPECT().List(mock.Anything).Return(sampleEvents(), nil).Once()
		f.categories.EXPECT().List(mock.Anything).Return(sampleCategories(), nil).Once()

		criteria := model.DefaultFilterCriteria()
		criteria.CategoryID = "food"
		items, err := f.svc.Feed(ctx, criteria, nil)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "e2", items[0].Event.ID)
	})

	t.Run("category list failure still filters", func(t *testing.T) {
		f := newDiscoveryFixture(t, savedSet{})
		f.events.EXPECT().List(mock.Anything).Return(sampleEvents(), nil).Once()
		f.categories.EXPECT().List(mock.Anything).Return(nil, apperrors.ErrUnavailable).Once()

		criteria := model.DefaultFilterCriteria()
		criteria.CategoryID = "music"
		items, err := f.svc.Feed(ctx, criteria, nil)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "e1", items[0].Event.ID)
	})

	t.Run("one cache read per item", func(t *testing.T) {
		events := repomocks.NewMockEventRepository(t)
		categories := repomocks.NewMockCategoryRepository(t)
		events.EXPECT().List(mock.Anything).Return(sampleEvents(), nil).Once()
		categories.EXPECT().List(mock.Anything).Return(sampleCategories(), nil).Once()

		// 第一次 miss，之後 hit：模擬 worker 在兩次讀取之間寫入快取
		resolver := &flippingResolver{label: "Salmiya, Kuwait"}
		q := queue.NewLabelQueue(8)
		svc := service.NewDiscoveryService(events, categories, resolver, q, savedSet{}, func() time.Time { return fixedNow })

		items, err := svc.Feed(ctx, model.DefaultFilterCriteria(), nil)
		require.NoError(t, err)
		require.Len(t, items, 3)

		assert.Equal(t, 1, resolver.peeks)
		assert.False(t, items[1].LocationResolved)
		assert.Equal(t, "29.33000, 48.00000", items[1].LocationLabel)
		assert.Equal(t, 1, q.Len())
	})

	t.Run("event list failure", func(t *testing.T) {
		f := newDiscoveryFixture(t, savedSet{})
		f.events.EXPECT().List(mock.Anything).Return(nil, apperrors.ErrUnavailable).Once()

		_, err := f.svc.Feed(ctx, model.DefaultFilterCriteria(), nil)
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})
}

func TestDiscoveryService_Grouped(t *testing.T) {
	f := newDiscoveryFixture(t, savedSet{})
	f.events.EXPECT().List(mock.Anything).Return(sampleEvents(), nil).Once()
	f.categories.EXPECT().List(mock.Anything).Return(sampleCategories(), nil).Once()

	groups, err := f.svc.Grouped(context.Background(), model.DefaultFilterCriteria(), nil)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "food", groups[0].CategoryID)
	assert.Equal(t, "music", groups[1].CategoryID)
	assert.Equal(t, "uncategorized", groups[2].CategoryID)
	assert.Equal(t, "e3", groups[2].Items[0].Event.ID)
}

func TestDiscoveryService_Region(t *testing.T) {
	f := newDiscoveryFixture(t, savedSet{})
	f.events.EXPECT().List(mock.Anything).Return(sampleEvents(), nil).Once()
	f.categories.EXPECT().List(mock.Anything).Return(sampleCategories(), nil).Once()

	region, err := f.svc.Region(context.Background(), model.DefaultFilterCriteria())
	require.NoError(t, err)
	assert.InDelta(t, 29.33, region.Latitude, 1e-9)
	assert.InDelta(t, 48.0, region.Longitude, 1e-9)
	assert.InDelta(t, 0.02, region.LatitudeDelta, 1e-9)
}

func TestDiscoveryService_FindEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("from snapshot", func(t *testing.T) {
		f := newDiscoveryFixture(t, savedSet{})
		f.events.EXPECT().List(mock.Anything).Return(sampleEvents(), nil).Once()
		f.categories.EXPECT().List(mock.Anything).Return(sampleCategories(), nil).Once()
		_, err := f.svc.Feed(ctx, model.DefaultFilterCriteria(), nil)
		require.NoError(t, err)

		e, err := f.svc.FindEvent(ctx, "e3")
		require.NoError(t, err)
		assert.Equal(t, "Art Walk", e.Title)
	})

	t.Run("falls back to repository", func(t *testing.T) {
		f := newDiscoveryFixture(t, savedSet{})
		f.events.EXPECT().FindByID(mock.Anything, "e9").Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := f.svc.FindEvent(ctx, "e9")
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		f := newDiscoveryFixture(t, savedSet{})
		_, err := f.svc.FindEvent(ctx, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestDiscoveryService_Label(t *testing.T) {
	f := newDiscoveryFixture(t, savedSet{})

	label, err := f.svc.Label(context.Background(), model.NewGeoPoint(48.0, 29.33))
	require.NoError(t, err)
	assert.Equal(t, "Salmiya, Kuwait", label)

	_, err = f.svc.Label(context.Background(), model.NewGeoPoint(200, 29.33))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
}
