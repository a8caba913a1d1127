package model

// FeedItem 給 UI 顯示的一筆活動
type FeedItem struct {
	Event            Event  `json:"event"`
	LocationLabel    string `json:"location_label"`
	LocationResolved bool   `json:"location_resolved"`
	Saved            bool   `json:"saved"`
	Distance         string `json:"distance,omitempty"`
	TravelTime       string `json:"travel_time,omitempty"`
}

type CategoryGroup struct {
	CategoryID string     `json:"category_id"`
	Items      []FeedItem `json:"items"`
}

// Region 地圖顯示範圍
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}
