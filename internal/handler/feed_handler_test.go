package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-gin-event-discovery/internal/handler"
	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/service/mocks"
	apperrors "go-gin-event-discovery/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFeedTestRouter(mockService *mocks.MockDiscoveryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handler.RequestLogging())

	handler.NewFeedHandler(mockService, time.UTC).RegisterRoutes(router)
	return router
}

func TestFeed(t *testing.T) {
	t.Run("Success - default criteria", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		mockService.EXPECT().Feed(mock.Anything, model.DefaultFilterCriteria(), (*model.GeoPoint)(nil)).
			Return([]model.FeedItem{{Event: model.Event{ID: "e1"}, LocationLabel: "Kuwait City"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(handler.RequestIDHeader))

		var body struct {
			Items []model.FeedItem `json:"items"`
			Count int              `json:"count"`
		}
		require.NoError(t, decodeBody(w, &body))
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, "Kuwait City", body.Items[0].LocationLabel)
	})

	t.Run("Success - query mapped to criteria", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		mockService.EXPECT().Feed(mock.Anything, mock.MatchedBy(func(c model.FilterCriteria) bool {
			return c.SearchText == "jazz" && c.CategoryID == "music" &&
				c.DatePeriod == model.DatePeriodWeek && c.SortKey == model.SortKeyNameDesc
		}), mock.MatchedBy(func(p *model.GeoPoint) bool {
			return p != nil && p.Latitude == 29.3 && p.Longitude == 48.0
		})).Return([]model.FeedItem{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?search=%20jazz%20&category=music&period=week&sort=name_desc&lat=29.3&lng=48.0", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success - custom range", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		wantStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
		mockService.EXPECT().Feed(mock.Anything, mock.MatchedBy(func(c model.FilterCriteria) bool {
			return c.DatePeriod == model.DatePeriodCustom && c.CustomRange != nil &&
				c.CustomRange.Start.Equal(wantStart) && c.CustomRange.End.Equal(wantEnd)
		}), (*model.GeoPoint)(nil)).Return([]model.FeedItem{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?period=custom&start=2024-06-01&end=2024-06-01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - invalid period", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?period=fortnight", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - reversed custom range", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?period=custom&start=2024-06-10&end=2024-06-01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - invalid origin", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?lat=95&lng=48", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - backend unavailable", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		mockService.EXPECT().Feed(mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnavailable).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("Failed - unauthorized", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		mockService.EXPECT().Feed(mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGrouped(t *testing.T) {
	mockService := mocks.NewMockDiscoveryService(t)
	router := setupFeedTestRouter(mockService)

	mockService.EXPECT().Grouped(mock.Anything, mock.Anything, mock.Anything).Return([]model.CategoryGroup{
		{CategoryID: "music", Items: []model.FeedItem{{Event: model.Event{ID: "e1"}}}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed/grouped", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category_id":"music"`)
}

func TestCategories(t *testing.T) {
	mockService := mocks.NewMockDiscoveryService(t)
	router := setupFeedTestRouter(mockService)

	mockService.EXPECT().Categories(mock.Anything).Return([]model.Category{{ID: "c1", Name: "Music"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Music"`)
}

func TestLabel(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		mockService.EXPECT().Label(mock.Anything, model.NewGeoPoint(47.9774, 29.3759)).Return("Kuwait City, Kuwait", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/label?lat=29.3759&lng=47.9774", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Kuwait City, Kuwait")
	})

	t.Run("Failed - missing lng", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/label?lat=29.3759", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - invalid coordinates", func(t *testing.T) {
		mockService := mocks.NewMockDiscoveryService(t)
		router := setupFeedTestRouter(mockService)

		mockService.EXPECT().Label(mock.Anything, mock.Anything).Return("", apperrors.ErrInvalidCoordinates).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/label?lat=120&lng=47", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegion(t *testing.T) {
	mockService := mocks.NewMockDiscoveryService(t)
	router := setupFeedTestRouter(mockService)

	mockService.EXPECT().Region(mock.Anything, mock.Anything).Return(model.Region{Latitude: 29.3, Longitude: 48, LatitudeDelta: 0.05, LongitudeDelta: 0.05}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/region", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var region model.Region
	require.NoError(t, decodeBody(w, &region))
	assert.Equal(t, 0.05, region.LatitudeDelta)
}
