package handler

import (
	"errors"
	"net/http"

	apperrors "go-gin-event-discovery/pkg/app_errors"
	"go-gin-event-discovery/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.Error(err),
	)
	switch {
	case errors.Is(err, apperrors.ErrInvalidCoordinates):
		log.Warn("Invalid coordinates")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrReviewNotAllowed):
		log.Warn("Review not allowed")
		c.JSON(http.StatusForbidden, gin.H{"error": "Rating opens after the event starts and requires a saved event"})
	case errors.Is(err, apperrors.ErrReviewExists):
		log.Warn("Review exists")
		c.JSON(http.StatusConflict, gin.H{"error": "You have already rated this event"})
	case errors.Is(err, apperrors.ErrEngagementPending):
		log.Warn("Engagement pending")
		c.JSON(http.StatusConflict, gin.H{"error": "Save still in progress, try again"})
	case errors.Is(err, apperrors.ErrUnavailable):
		log.Error("Backend unavailable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Backend unavailable"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
