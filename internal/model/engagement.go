package model

import (
	"strings"
	"time"
)

const OptimisticIDPrefix = "optimistic-"

// Engagement 使用者收藏活動的紀錄，ID 由後端指派
type Engagement struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	Event     Event     `json:"event"`
	Attended  bool      `json:"attended"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewOptimisticEngagement 建立尚未經後端確認的暫時紀錄
func NewOptimisticEngagement(event Event, now time.Time) Engagement {
	return Engagement{
		ID:        OptimisticIDPrefix + event.ID,
		UserID:    "me",
		Event:     event,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOptimistic 暫時紀錄的 ID 不能拿來刪除
func (e Engagement) IsOptimistic() bool {
	return strings.HasPrefix(e.ID, OptimisticIDPrefix)
}

type ToggleAction string

const (
	ToggleActionAdded   ToggleAction = "added"
	ToggleActionRemoved ToggleAction = "removed"
)

type ToggleResult struct {
	Action     ToggleAction `json:"action"`
	EventID    string       `json:"event_id"`
	Engagement *Engagement  `json:"engagement,omitempty"`
}
