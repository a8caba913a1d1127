package handler

import (
	"net/http"
	"strings"
	"time"

	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/service"
	apperrors "go-gin-event-discovery/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	service service.DiscoveryService
	loc     *time.Location
}

func NewFeedHandler(service service.DiscoveryService, loc *time.Location) *FeedHandler {
	if loc == nil {
		loc = time.Local
	}
	return &FeedHandler{service: service, loc: loc}
}

func (h *FeedHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("feed", h.Feed)
		router.GET("feed/grouped", h.Grouped)
		router.GET("categories", h.Categories)
		router.GET("locations/label", h.Label)
		router.GET("locations/region", h.Region)
	}
}

// FeedQuery feed 篩選參數；lat/lng 為使用者位置，用來計算距離
type FeedQuery struct {
	Search   string   `form:"search"`
	Category string   `form:"category"`
	Period   string   `form:"period" binding:"omitempty,oneof=none week weekend next_week month year custom"`
	Start    string   `form:"start"`
	End      string   `form:"end"`
	Sort     string   `form:"sort" binding:"omitempty,oneof=none name_asc name_desc"`
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
}

type LabelQuery struct {
	Lat *float64 `form:"lat" binding:"required"`
	Lng *float64 `form:"lng" binding:"required"`
}

func (h *FeedHandler) Feed(c *gin.Context) {
	criteria, origin, ok := h.bindFeedQuery(c)
	if !ok {
		return
	}
	items, err := h.service.Feed(c, criteria, origin)
	if err != nil {
		handleError(c, err, "Feed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (h *FeedHandler) Grouped(c *gin.Context) {
	criteria, origin, ok := h.bindFeedQuery(c)
	if !ok {
		return
	}
	groups, err := h.service.Grouped(c, criteria, origin)
	if err != nil {
		handleError(c, err, "Grouped")
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h *FeedHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c)
	if err != nil {
		handleError(c, err, "Categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *FeedHandler) Label(c *gin.Context) {
	var query LabelQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	point := model.NewGeoPoint(*query.Lng, *query.Lat)
	label, err := h.service.Label(c, point)
	if err != nil {
		handleError(c, err, "Label")
		return
	}
	c.JSON(http.StatusOK, gin.H{"label": label, "latitude": point.Latitude, "longitude": point.Longitude})
}

func (h *FeedHandler) Region(c *gin.Context) {
	criteria, _, ok := h.bindFeedQuery(c)
	if !ok {
		return
	}
	region, err := h.service.Region(c, criteria)
	if err != nil {
		handleError(c, err, "Region")
		return
	}
	c.JSON(http.StatusOK, region)
}

func (h *FeedHandler) bindFeedQuery(c *gin.Context) (model.FilterCriteria, *model.GeoPoint, bool) {
	var query FeedQuery
	if err := BindQuery(c, &query); err != nil {
		return model.FilterCriteria{}, nil, false
	}

	criteria := model.DefaultFilterCriteria()
	criteria.SearchText = strings.TrimSpace(query.Search)
	if query.Category != "" {
		criteria.CategoryID = query.Category
	}
	if query.Period != "" {
		criteria.DatePeriod = model.DatePeriod(query.Period)
	}
	if query.Sort != "" {
		criteria.SortKey = model.SortKey(query.Sort)
	}

	if criteria.DatePeriod == model.DatePeriodCustom {
		rng, err := h.parseRange(query.Start, query.End)
		if err != nil {
			handleError(c, err, "bindFeedQuery")
			return model.FilterCriteria{}, nil, false
		}
		criteria.CustomRange = rng
	}

	var origin *model.GeoPoint
	if query.Lat != nil && query.Lng != nil {
		p := model.NewGeoPoint(*query.Lng, *query.Lat)
		if !p.Valid() {
			handleError(c, apperrors.ErrInvalidCoordinates, "bindFeedQuery")
			return model.FilterCriteria{}, nil, false
		}
		origin = &p
	}
	return criteria, origin, true
}

// parseRange 接受 RFC3339 或 YYYY-MM-DD；只給日期時 end 取當天最後一刻
func (h *FeedHandler) parseRange(start, end string) (*model.DateRange, error) {
	rng := &model.DateRange{}
	if start != "" {
		t, _, err := h.parseTime(start)
		if err != nil {
			return nil, err
		}
		rng.Start = &t
	}
	if end != "" {
		t, dateOnly, err := h.parseTime(end)
		if err != nil {
			return nil, err
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		rng.End = &t
	}
	if rng.Start != nil && rng.End != nil && rng.End.Before(*rng.Start) {
		return nil, apperrors.ErrInvalidInput
	}
	return rng, nil
}

func (h *FeedHandler) parseTime(text string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, false, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, text, h.loc); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, apperrors.ErrInvalidInput
}
