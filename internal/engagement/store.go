package engagement

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go-gin-event-discovery/internal/model"
	apperrors "go-gin-event-discovery/pkg/app_errors"
	"go-gin-event-discovery/pkg/logger"

	"go.uber.org/zap"
)

// Remote 後端 engagement API
type Remote interface {
	List(ctx context.Context) ([]model.Engagement, error)
	Create(ctx context.Context, eventID string) (*model.Engagement, error)
	Delete(ctx context.Context, engagementID string) error
}

type Options struct {
	// SerializePerEvent 同一個活動的 toggle 排隊執行；預設關閉，靠 toggle 後的 Load 收斂
	SerializePerEvent bool
	// Now 測試用，預設 time.Now
	Now func() time.Time
}

// Store 目前使用者已收藏活動的本地狀態，以後端為準。
// Toggle 先做 optimistic 更新再呼叫後端，失敗時整份還原，結束後一律 Load 一次。
type Store struct {
	remote Remote
	now    func() time.Time
	locks  *keyedMutex
	log    *zap.Logger

	mu          sync.Mutex
	engagements []model.Engagement
	loaded      bool
}

func NewStore(remote Remote, opts Options) *Store {
	s := &Store{
		remote:      remote,
		now:         opts.Now,
		log:         logger.WithComponent("engagement"),
		engagements: []model.Engagement{},
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.SerializePerEvent {
		s.locks = newKeyedMutex()
	}
	return s
}

// Load 從後端取得完整清單並整份取代本地狀態；失敗時本地狀態不變
func (s *Store) Load(ctx context.Context) ([]model.Engagement, error) {
	list, err := s.remote.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load engagements: %w", err)
	}

	s.mu.Lock()
	s.engagements = slices.Clone(list)
	s.loaded = true
	s.mu.Unlock()

	return slices.Clone(list), nil
}

// Toggle 切換活動的收藏狀態。snapshot 不為 nil 時新增會先 optimistic 顯示
func (s *Store) Toggle(ctx context.Context, eventID string, snapshot *model.Event) (model.ToggleResult, error) {
	if eventID == "" {
		return model.ToggleResult{}, apperrors.ErrInvalidInput
	}
	if s.locks != nil {
		unlock := s.locks.Lock(eventID)
		defer unlock()
	}

	// 後端呼叫與之後的 Load 不跟著呼叫端取消
	ctx = context.WithoutCancel(ctx)

	prev, existing, err := s.applyOptimistic(eventID, snapshot)
	if err != nil {
		// 沒有送出任何請求，但仍同步一次，讓暫時紀錄盡快換成後端的版本
		s.refresh(ctx, eventID)
		return model.ToggleResult{}, err
	}

	var result model.ToggleResult
	if existing != nil {
		err = s.remote.Delete(ctx, existing.ID)
		result = model.ToggleResult{Action: model.ToggleActionRemoved, EventID: eventID, Engagement: existing}
	} else {
		var created *model.Engagement
		created, err = s.remote.Create(ctx, eventID)
		if err == nil && created == nil {
			err = fmt.Errorf("create engagement: empty response: %w", apperrors.ErrUnavailable)
		}
		if err == nil {
			confirmed := s.confirmAdd(eventID, *created, snapshot)
			result = model.ToggleResult{Action: model.ToggleActionAdded, EventID: eventID, Engagement: &confirmed}
		}
	}

	if err != nil {
		s.mu.Lock()
		s.engagements = prev
		s.mu.Unlock()
		s.log.Warn("toggle failed, local state rolled back", zap.String("event_id", eventID), zap.Error(err))
	}

	s.refresh(ctx, eventID)

	if err != nil {
		return model.ToggleResult{}, fmt.Errorf("toggle engagement %s: %w", eventID, err)
	}
	return result, nil
}

// refresh 失敗只記錄，不影響 toggle 的結果
func (s *Store) refresh(ctx context.Context, eventID string) {
	if _, err := s.Load(ctx); err != nil {
		s.log.Warn("refresh after toggle failed", zap.String("event_id", eventID), zap.Error(err))
	}
}

// applyOptimistic 在鎖內完成「查詢 + 本地更新」，回傳更新前的完整快照
func (s *Store) applyOptimistic(eventID string, snapshot *model.Event) ([]model.Engagement, *model.Engagement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := slices.Clone(s.engagements)
	idx := indexOfEvent(s.engagements, eventID)

	if idx >= 0 {
		found := s.engagements[idx]
		// 暫時紀錄沒有後端 ID，無法刪除
		if found.IsOptimistic() {
			return nil, nil, apperrors.ErrEngagementPending
		}
		s.engagements = slices.Delete(slices.Clone(s.engagements), idx, idx+1)
		return prev, &found, nil
	}

	if snapshot != nil {
		event := *snapshot
		if event.ID == "" {
			event.ID = eventID
		}
		s.engagements = append(slices.Clone(s.engagements), model.NewOptimisticEngagement(event, s.now()))
	}
	return prev, nil, nil
}

// confirmAdd 以後端建立的紀錄取代暫時紀錄，之後 Load 失敗也能用真正的 ID 刪除
func (s *Store) confirmAdd(eventID string, created model.Engagement, snapshot *model.Event) model.Engagement {
	if created.Event.ID == "" {
		created.Event.ID = eventID
	}
	if created.Event.Title == "" && snapshot != nil {
		created.Event = *snapshot
		created.Event.ID = eventID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Engagement, 0, len(s.engagements)+1)
	placed := false
	for _, e := range s.engagements {
		if e.Event.ID != eventID {
			next = append(next, e)
			continue
		}
		if placed {
			continue
		}
		if e.IsOptimistic() || e.ID == created.ID {
			next = append(next, created)
		} else {
			next = append(next, e)
		}
		placed = true
	}
	if !placed {
		next = append(next, created)
	}
	s.engagements = next
	return created
}

func (s *Store) IsSaved(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOfEvent(s.engagements, eventID) >= 0
}

// EngagementID 回傳活動對應的 engagement ID（可能是暫時 ID）
func (s *Store) EngagementID(eventID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := indexOfEvent(s.engagements, eventID)
	if idx < 0 {
		return "", false
	}
	return s.engagements[idx].ID, true
}

func (s *Store) Engagements() []model.Engagement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.engagements)
}

func (s *Store) SavedEvents() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]model.Event, 0, len(s.engagements))
	for _, e := range s.engagements {
		if e.Event.ID != "" {
			events = append(events, e.Event)
		}
	}
	return events
}

// SavedSet 已收藏的 event ID 集合，給 feed 標記用
func (s *Store) SavedSet() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := make(map[string]struct{}, len(s.engagements))
	for _, e := range s.engagements {
		if e.Event.ID != "" {
			set[e.Event.ID] = struct{}{}
		}
	}
	return set
}

func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func indexOfEvent(list []model.Engagement, eventID string) int {
	return slices.IndexFunc(list, func(e model.Engagement) bool {
		return e.Event.ID == eventID
	})
}
