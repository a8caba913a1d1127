package handler

import (
	"errors"
	"io"
	"net/http"

	"go-gin-event-discovery/internal/model"
	"go-gin-event-discovery/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	service service.EngagementService
}

func NewEngagementHandler(service service.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: service}
}

func (h *EngagementHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("engagements", h.List)
		router.POST("engagements/refresh", h.Refresh)
		router.POST("engagements/:eventId/toggle", h.Toggle)
	}
}

type EventURI struct {
	EventID string `uri:"eventId" binding:"required"`
}

// ToggleRequest body 可省略；帶 event 時新增會立即顯示
type ToggleRequest struct {
	Event *model.Event `json:"event"`
}

func (h *EngagementHandler) List(c *gin.Context) {
	list, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, gin.H{"engagements": list, "count": len(list)})
}

func (h *EngagementHandler) Refresh(c *gin.Context) {
	list, err := h.service.Refresh(c)
	if err != nil {
		handleError(c, err, "Refresh")
		return
	}
	c.JSON(http.StatusOK, gin.H{"engagements": list, "count": len(list)})
}

func (h *EngagementHandler) Toggle(c *gin.Context) {
	var uri EventURI
	if err := BindUri(c, &uri); err != nil {
		return
	}

	var req ToggleRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	result, err := h.service.Toggle(c, uri.EventID, req.Event)
	if err != nil {
		handleError(c, err, "Toggle")
		return
	}

	status := http.StatusOK
	if result.Action == model.ToggleActionAdded {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}
