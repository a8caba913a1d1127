package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrEventNotFound      = errors.New("event not found")
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnavailable        = errors.New("backend unavailable")
	ErrEngagementPending  = errors.New("engagement save still pending")
	ErrQueueFull          = errors.New("queue full")
	ErrReviewNotAllowed   = errors.New("review not allowed")
	ErrReviewExists       = errors.New("review already exists")
)
