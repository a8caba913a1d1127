package repository

import (
	"context"
	"net/http"

	"go-gin-event-discovery/internal/model"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
}

type CategoryRepositoryImpl struct {
	client *Client
}

func NewCategoryRepository(client *Client) CategoryRepository {
	return &CategoryRepositoryImpl{client: client}
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.client.do(ctx, http.MethodGet, "/category", nil, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}
