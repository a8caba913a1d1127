package handler

import (
	"net/http"

	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/events/:eventId")
	{
		router.GET("rating", h.Summary)
		router.GET("reviews", h.List)
		router.GET("my-review", h.Mine)
		router.POST("rate", h.Rate)
		router.PATCH("review-text", h.UpdateText)
	}
}

type RateRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"max=200"`
}

type ReviewTextRequest struct {
	Text string `json:"text" binding:"max=200"`
}

func (h *ReviewHandler) Summary(c *gin.Context) {
	var uri EventURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	summary, err := h.service.Summary(c, uri.EventID)
	if err != nil {
		handleError(c, err, "Summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReviewHandler) List(c *gin.Context) {
	var uri EventURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	reviews, err := h.service.Reviews(c, uri.EventID)
	if err != nil {
		handleError(c, err, "ListReviews")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

func (h *ReviewHandler) Mine(c *gin.Context) {
	var uri EventURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	review, err := h.service.MyReview(c, uri.EventID)
	if err != nil {
		handleError(c, err, "MyReview")
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *ReviewHandler) Rate(c *gin.Context) {
	var uri EventURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req RateRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	review, err := h.service.Rate(c, uri.EventID, model.RatingRequest{Rating: req.Rating, Text: req.Text})
	if err != nil {
		handleError(c, err, "Rate")
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) UpdateText(c *gin.Context) {
	var uri EventURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req ReviewTextRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	review, err := h.service.UpdateText(c, uri.EventID, req.Text)
	if err != nil {
		handleError(c, err, "UpdateText")
		return
	}
	c.JSON(http.StatusOK, review)
}
