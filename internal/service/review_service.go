package service

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/repository"
	apperrors "go-gin-event-discovery/pkg/app_errors"
	"go-gin-event-discovery/pkg/logger"

	"go.uber.org/zap"
)

// 評分摘要的快取時間，評分成功後立即失效
const summaryTTL = time.Minute

type ReviewService interface {
	Summary(ctx context.Context, eventID string) (model.ReviewSummary, error)
	Reviews(ctx context.Context, eventID string) ([]model.Review, error)
	// MyReview 還沒評分時回傳 nil
	MyReview(ctx context.Context, eventID string) (*model.Review, error)
	// Rate 需要已收藏、活動已開始且尚未評分
	Rate(ctx context.Context, eventID string, req model.RatingRequest) (*model.Review, error)
	// UpdateText 只能修改自己已存在的評論
	UpdateText(ctx context.Context, eventID string, text string) (*model.Review, error)
}

// SavedChecker 由 engagement.Store 實作
type SavedChecker interface {
	IsSaved(eventID string) bool
}

type cachedSummary struct {
	summary   model.ReviewSummary
	fetchedAt time.Time
}

type ReviewServiceImpl struct {
	reviews repository.ReviewRepository
	events  EventFinder
	saved   SavedChecker
	now     func() time.Time
	log     *zap.Logger

	mu        sync.Mutex
	summaries map[string]cachedSummary
}

func NewReviewService(reviews repository.ReviewRepository, events EventFinder, saved SavedChecker, now func() time.Time) ReviewService {
	if now == nil {
		now = time.Now
	}
	return &ReviewServiceImpl{
		reviews:   reviews,
		events:    events,
		saved:     saved,
		now:       now,
		log:       logger.WithComponent("service"),
		summaries: map[string]cachedSummary{},
	}
}

func (s *ReviewServiceImpl) Summary(ctx context.Context, eventID string) (model.ReviewSummary, error) {
	if eventID == "" {
		return model.ReviewSummary{}, apperrors.ErrInvalidInput
	}

	s.mu.Lock()
	cached, ok := s.summaries[eventID]
	s.mu.Unlock()
	if ok && s.now().Sub(cached.fetchedAt) < summaryTTL {
		return cached.summary, nil
	}

	summary, err := s.reviews.Summary(ctx, eventID)
	if err != nil {
		return model.ReviewSummary{}, err
	}
	s.mu.Lock()
	s.summaries[eventID] = cachedSummary{summary: summary, fetchedAt: s.now()}
	s.mu.Unlock()
	return summary, nil
}

func (s *ReviewServiceImpl) Reviews(ctx context.Context, eventID string) ([]model.Review, error) {
	if eventID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.reviews.List(ctx, eventID)
}

func (s *ReviewServiceImpl) MyReview(ctx context.Context, eventID string) (*model.Review, error) {
	if eventID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.reviews.Mine(ctx, eventID)
}

func (s *ReviewServiceImpl) Rate(ctx context.Context, eventID string, req model.RatingRequest) (*model.Review, error) {
	if eventID == "" || req.Rating < model.MinRating || req.Rating > model.MaxRating {
		return nil, apperrors.ErrInvalidInput
	}
	req.Text = strings.TrimSpace(req.Text)
	if utf8.RuneCountInString(req.Text) > model.MaxReviewTextRune {
		return nil, apperrors.ErrInvalidInput
	}

	if s.saved != nil && !s.saved.IsSaved(eventID) {
		return nil, apperrors.ErrReviewNotAllowed
	}
	if err := s.checkStarted(ctx, eventID); err != nil {
		return nil, err
	}

	mine, err := s.reviews.Mine(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if mine != nil {
		return nil, apperrors.ErrReviewExists
	}

	review, err := s.reviews.Rate(ctx, eventID, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(eventID)
	return review, nil
}

func (s *ReviewServiceImpl) UpdateText(ctx context.Context, eventID string, text string) (*model.Review, error) {
	if eventID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > model.MaxReviewTextRune {
		return nil, apperrors.ErrInvalidInput
	}

	mine, err := s.reviews.Mine(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if mine == nil {
		return nil, apperrors.ErrNotFound
	}
	return s.reviews.UpdateText(ctx, eventID, model.ReviewTextRequest{Text: text})
}

// checkStarted 活動開始之後才能評分
func (s *ReviewServiceImpl) checkStarted(ctx context.Context, eventID string) error {
	if s.events == nil {
		return nil
	}
	event, err := s.events.FindEvent(ctx, eventID)
	if err != nil {
		return err
	}
	now := s.now()
	startsAt, ok := event.StartsAt(now.Location())
	if !ok {
		// 日期無法解析時交給後端判斷
		s.log.Debug("event date unparsable, skipping start check", zap.String("event_id", eventID))
		return nil
	}
	if !now.After(startsAt) {
		return apperrors.ErrReviewNotAllowed
	}
	return nil
}

func (s *ReviewServiceImpl) invalidate(eventID string) {
	s.mu.Lock()
	delete(s.summaries, eventID)
	s.mu.Unlock()
}
