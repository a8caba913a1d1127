package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go-gin-event-discovery/internal/model"
	apperrors "go-gin-event-discovery/pkg/app_errors"
)

// ReviewRepository 活動評分與評論；my-review / rate / review-text 以 bearer token 決定使用者
type ReviewRepository interface {
	Summary(ctx context.Context, eventID string) (model.ReviewSummary, error)
	List(ctx context.Context, eventID string) ([]model.Review, error)
	Mine(ctx context.Context, eventID string) (*model.Review, error)
	Rate(ctx context.Context, eventID string, req model.RatingRequest) (*model.Review, error)
	UpdateText(ctx context.Context, eventID string, req model.ReviewTextRequest) (*model.Review, error)
}

type ReviewRepositoryImpl struct {
	client *Client
}

func NewReviewRepository(client *Client) ReviewRepository {
	return &ReviewRepositoryImpl{client: client}
}

func eventPath(eventID, suffix string) string {
	return "/events/" + url.PathEscape(eventID) + "/" + suffix
}

func (r *ReviewRepositoryImpl) Summary(ctx context.Context, eventID string) (model.ReviewSummary, error) {
	if eventID == "" {
		return model.ReviewSummary{}, apperrors.ErrInvalidInput
	}
	var summary model.ReviewSummary
	if err := r.client.do(ctx, http.MethodGet, eventPath(eventID, "rating"), nil, &summary); err != nil {
		return model.ReviewSummary{}, err
	}
	return summary, nil
}

func (r *ReviewRepositoryImpl) List(ctx context.Context, eventID string) ([]model.Review, error) {
	if eventID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	var reviews []model.Review
	if err := r.client.do(ctx, http.MethodGet, eventPath(eventID, "reviews"), nil, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}

// Mine 還沒評分時回傳 nil, nil（後端回 null 或 404）
func (r *ReviewRepositoryImpl) Mine(ctx context.Context, eventID string) (*model.Review, error) {
	if eventID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	var review *model.Review
	err := r.client.do(ctx, http.MethodGet, eventPath(eventID, "my-review"), nil, &review)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if review != nil && review.ID == "" {
		return nil, nil
	}
	return review, nil
}

func (r *ReviewRepositoryImpl) Rate(ctx context.Context, eventID string, req model.RatingRequest) (*model.Review, error) {
	if eventID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	var resp model.RatingResponse
	if err := r.client.do(ctx, http.MethodPost, eventPath(eventID, "rate"), req, &resp); err != nil {
		return nil, err
	}
	if resp.Review.ID == "" {
		return nil, fmt.Errorf("rate event: empty review in response: %w", apperrors.ErrUnavailable)
	}
	return &resp.Review, nil
}

func (r *ReviewRepositoryImpl) UpdateText(ctx context.Context, eventID string, req model.ReviewTextRequest) (*model.Review, error) {
	if eventID == "" {
		return nil, apperrors.ErrInvalidInput
	}
	var review model.Review
	if err := r.client.do(ctx, http.MethodPatch, eventPath(eventID, "review-text"), req, &review); err != nil {
		return nil, err
	}
	if review.ID == "" {
		return nil, fmt.Errorf("update review text: empty review in response: %w", apperrors.ErrUnavailable)
	}
	return &review, nil
}
