package model

import (
	"encoding/json"
	"math"
)

// GeoPoint 經緯度座標。一律以具名欄位建構，避免 [lng,lat] / [lat,lng] 順序混淆
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func NewGeoPoint(longitude, latitude float64) GeoPoint {
	return GeoPoint{Longitude: longitude, Latitude: latitude}
}

// Valid 經緯度皆為有限值且在合法範圍內
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) ||
		math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// Location 活動地點：自由文字、GeoJSON Point，或兩者皆無
type Location struct {
	Text  string
	Point *GeoPoint
}

type geoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// UnmarshalJSON 接受字串、{type:"Point",coordinates:[lng,lat]} 或 null。
// 其他形狀、座標數量不對或含 null 時視為沒有座標，不回傳錯誤，單筆壞資料不影響整份清單
func (l *Location) UnmarshalJSON(data []byte) error {
	*l = Location{}
	if string(data) == "null" {
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		l.Text = text
		return nil
	}

	var raw struct {
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil || len(raw.Coordinates) == 0 {
		return nil
	}
	// null 會被解成 0，必須用指標分辨
	var coords []*float64
	if err := json.Unmarshal(raw.Coordinates, &coords); err != nil {
		return nil
	}
	if len(coords) != 2 || coords[0] == nil || coords[1] == nil {
		return nil
	}
	p := GeoPoint{Longitude: *coords[0], Latitude: *coords[1]}
	if p.Valid() {
		l.Point = &p
	}
	return nil
}

func (l Location) MarshalJSON() ([]byte, error) {
	if l.Point != nil {
		return json.Marshal(geoJSONPoint{
			Type:        "Point",
			Coordinates: []float64{l.Point.Longitude, l.Point.Latitude},
		})
	}
	if l.Text != "" {
		return json.Marshal(l.Text)
	}
	return []byte("null"), nil
}
