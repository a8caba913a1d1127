package geo

import (
	"strings"

	"go-gin-event-discovery/internal/model"
)

const UnknownLocation = "Unknown location"

// Place 反向地理編碼的單筆結果，欄位皆可能為空
type Place struct {
	Name      string `json:"name,omitempty"`
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	Subregion string `json:"subregion,omitempty"`
	Region    string `json:"region,omitempty"`
	Country   string `json:"country,omitempty"`
}

// ComposeLabel 由最具體到最籠統組出顯示字串；沒有任何欄位時回傳座標字串
func ComposeLabel(places []Place, p model.GeoPoint) string {
	if len(places) == 0 {
		return FallbackLabel(p)
	}
	best := places[0]
	city := best.City
	if strings.TrimSpace(city) == "" {
		city = best.Subregion
	}

	parts := make([]string, 0, 5)
	for _, part := range []string{best.Name, best.Street, city, best.Region, best.Country} {
		if s := strings.TrimSpace(part); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return FallbackLabel(p)
	}
	return strings.Join(parts, ", ")
}

// ReadableLocation 依優先順序決定活動地點文字：
// placeName > address > 已解析的地名 > 座標字串 > 文字地點 > Unknown location
func ReadableLocation(e model.Event, lookup func(model.GeoPoint) (string, bool)) string {
	if e.PlaceName != "" {
		return e.PlaceName
	}
	if e.Address != "" {
		return e.Address
	}
	if p, ok := e.Coordinates(); ok {
		if lookup != nil {
			if label, ok := lookup(p); ok {
				return label
			}
		}
		return FallbackLabel(p)
	}
	if e.Location != nil && e.Location.Text != "" {
		return e.Location.Text
	}
	return UnknownLocation
}

// NeedsGeocoding 只有沒有地名、地址而且帶有座標的活動才需要反查
func NeedsGeocoding(e model.Event) (model.GeoPoint, bool) {
	if e.PlaceName != "" || e.Address != "" {
		return model.GeoPoint{}, false
	}
	return e.Coordinates()
}
