package model

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	MinRating         = 1
	MaxRating         = 5
	MaxReviewTextRune = 200
)

// Review 使用者對活動的評分與評論，每人每個活動一筆
type Review struct {
	ID        string     `json:"_id"`
	EventID   string     `json:"eventId"`
	UserID    string     `json:"userId"`
	UserName  string     `json:"userName,omitempty"`
	Rating    int        `json:"rating"`
	Text      string     `json:"text,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// UnmarshalJSON userId 可能是 id 字串，也可能是 populate 過的 {_id,name}
func (r *Review) UnmarshalJSON(data []byte) error {
	type plain Review
	aux := struct {
		*plain
		User json.RawMessage `json:"userId"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.UserID, r.UserName = "", ""
	if len(aux.User) == 0 || string(aux.User) == "null" {
		return nil
	}
	if err := json.Unmarshal(aux.User, &r.UserID); err == nil {
		return nil
	}
	var ref struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(aux.User, &ref); err != nil {
		return fmt.Errorf("unmarshal review user: %w", err)
	}
	r.UserID, r.UserName = ref.ID, ref.Name
	return nil
}

// ReviewSummary 活動的平均分數與評分數
type ReviewSummary struct {
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int     `json:"ratingsCount"`
}

type RatingRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text,omitempty"`
}

type RatingResponse struct {
	Message string `json:"message"`
	Review  Review `json:"review"`
}

type ReviewTextRequest struct {
	Text string `json:"text,omitempty"`
}
