package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go-gin-event-discovery/internal/filter"
	"go-gin-event-discovery/internal/geo"
	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/queue"
	"go-gin-event-discovery/internal/repository"
	apperrors "go-gin-event-discovery/pkg/app_errors"
	"go-gin-event-discovery/pkg/logger"

	"go.uber.org/zap"
)

// 地圖範圍的額外邊界（度）
const regionPadding = 0.02

type DiscoveryService interface {
	// Feed 篩選後的活動，附上地名、收藏狀態與距離
	Feed(ctx context.Context, criteria model.FilterCriteria, origin *model.GeoPoint) ([]model.FeedItem, error)
	// Grouped 同樣的篩選，依分類分組
	Grouped(ctx context.Context, criteria model.FilterCriteria, origin *model.GeoPoint) ([]model.CategoryGroup, error)
	Categories(ctx context.Context) ([]model.Category, error)
	// Label 同步反查座標地名
	Label(ctx context.Context, point model.GeoPoint) (string, error)
	Region(ctx context.Context, criteria model.FilterCriteria) (model.Region, error)
	FindEvent(ctx context.Context, eventID string) (*model.Event, error)
}

// LabelResolver 由 geo.Resolver 實作
type LabelResolver interface {
	Resolve(ctx context.Context, point model.GeoPoint) (string, error)
	Peek(ctx context.Context, point model.GeoPoint) (string, bool)
}

// SavedSource 由 engagement.Store 實作
type SavedSource interface {
	SavedSet() map[string]struct{}
}

type DiscoveryServiceImpl struct {
	events     repository.EventRepository
	categories repository.CategoryRepository
	resolver   LabelResolver
	prefetch   queue.LabelQueue
	saved      SavedSource
	now        func() time.Time
	log        *zap.Logger

	mu       sync.RWMutex
	snapshot map[string]model.Event
}

func NewDiscoveryService(
	events repository.EventRepository,
	categories repository.CategoryRepository,
	resolver LabelResolver,
	prefetch queue.LabelQueue,
	saved SavedSource,
	now func() time.Time,
) DiscoveryService {
	if now == nil {
		now = time.Now
	}
	return &DiscoveryServiceImpl{
		events:     events,
		categories: categories,
		resolver:   resolver,
		prefetch:   prefetch,
		saved:      saved,
		now:        now,
		log:        logger.WithComponent("service"),
		snapshot:   map[string]model.Event{},
	}
}

func (s *DiscoveryServiceImpl) Feed(ctx context.Context, criteria model.FilterCriteria, origin *model.GeoPoint) ([]model.FeedItem, error) {
	events, _, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, events, origin), nil
}

func (s *DiscoveryServiceImpl) Grouped(ctx context.Context, criteria model.FilterCriteria, origin *model.GeoPoint) ([]model.CategoryGroup, error) {
	events, categories, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, err
	}

	groups := filter.GroupByCategory(events, s.now().Location())
	keys := groupOrder(groups, categories)

	result := make([]model.CategoryGroup, 0, len(keys))
	for _, key := range keys {
		result = append(result, model.CategoryGroup{
			CategoryID: key,
			Items:      s.decorate(ctx, groups[key], origin),
		})
	}
	return result, nil
}

func (s *DiscoveryServiceImpl) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *DiscoveryServiceImpl) Label(ctx context.Context, point model.GeoPoint) (string, error) {
	return s.resolver.Resolve(ctx, point)
}

func (s *DiscoveryServiceImpl) Region(ctx context.Context, criteria model.FilterCriteria) (model.Region, error) {
	events, _, err := s.filtered(ctx, criteria)
	if err != nil {
		return model.Region{}, err
	}
	points := make([]model.GeoPoint, 0, len(events))
	for _, e := range events {
		if p, ok := e.Coordinates(); ok {
			points = append(points, p)
		}
	}
	return geo.RegionFor(points, regionPadding), nil
}

// FindEvent 先查最近一次 feed 的快照，沒有才打後端
func (s *DiscoveryServiceImpl) FindEvent(ctx context.Context, eventID string) (*model.Event, error) {
	if eventID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	s.mu.RLock()
	e, ok := s.snapshot[eventID]
	s.mu.RUnlock()
	if ok {
		return &e, nil
	}
	return s.events.FindByID(ctx, eventID)
}

func (s *DiscoveryServiceImpl) filtered(ctx context.Context, criteria model.FilterCriteria) ([]model.Event, []model.Category, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	s.remember(events)

	// 分類清單只用來展開別名，取不到時退回只比對 ID
	categories, err := s.categories.List(ctx)
	if err != nil {
		s.log.Warn("list categories failed, matching category id only", zap.Error(err))
		categories = nil
	}

	return filter.Apply(events, categories, criteria, s.now()), categories, nil
}

func (s *DiscoveryServiceImpl) remember(events []model.Event) {
	snapshot := make(map[string]model.Event, len(events))
	for _, e := range events {
		if e.ID != "" {
			snapshot[e.ID] = e
		}
	}
	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
}

// decorate 地名只查快取；沒命中的座標丟進 prefetch 隊列，這次先顯示座標字串
func (s *DiscoveryServiceImpl) decorate(ctx context.Context, events []model.Event, origin *model.GeoPoint) []model.FeedItem {
	saved := s.saved.SavedSet()
	queued := make(map[string]struct{})

	items := make([]model.FeedItem, 0, len(events))
	for _, e := range events {
		item := model.FeedItem{Event: e, LocationResolved: true}

		// 每筆只查一次快取，label 與 LocationResolved 必須來自同一次結果
		var label string
		var hit bool
		if point, ok := geo.NeedsGeocoding(e); ok {
			label, hit = s.resolver.Peek(ctx, point)
			if !hit {
				item.LocationResolved = false
				s.enqueue(ctx, point, queued)
			}
		}
		item.LocationLabel = geo.ReadableLocation(e, func(model.GeoPoint) (string, bool) {
			return label, hit
		})

		_, item.Saved = saved[e.ID]

		if origin != nil {
			if point, ok := e.Coordinates(); ok {
				km := geo.Distance(*origin, point)
				item.Distance = geo.FormatDistance(km)
				item.TravelTime = geo.EstimateTravelTime(km, geo.DefaultCitySpeedKmh)
			}
		}
		items = append(items, item)
	}
	return items
}

func (s *DiscoveryServiceImpl) enqueue(ctx context.Context, point model.GeoPoint, queued map[string]struct{}) {
	if s.prefetch == nil {
		return
	}
	key := geo.CoordKey(point)
	if _, ok := queued[key]; ok {
		return
	}
	queued[key] = struct{}{}

	if err := s.prefetch.Publish(ctx, point); err != nil {
		if errors.Is(err, apperrors.ErrQueueFull) {
			s.log.Debug("prefetch queue full", zap.String("key", key))
			return
		}
		s.log.Warn("publish prefetch failed", zap.String("key", key), zap.Error(err))
	}
}

// groupOrder 依分類清單順序，其他 ID 依字母，未分類最後
func groupOrder(groups map[string][]model.Event, categories []model.Category) []string {
	keys := make([]string, 0, len(groups))
	seen := make(map[string]struct{}, len(groups))
	for _, c := range categories {
		if _, ok := groups[c.ID]; ok {
			if _, dup := seen[c.ID]; !dup {
				keys = append(keys, c.ID)
				seen[c.ID] = struct{}{}
			}
		}
	}

	var rest []string
	for key := range groups {
		if _, ok := seen[key]; ok || key == filter.Uncategorized {
			continue
		}
		rest = append(rest, key)
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	if _, ok := groups[filter.Uncategorized]; ok {
		keys = append(keys, filter.Uncategorized)
	}
	return keys
}
