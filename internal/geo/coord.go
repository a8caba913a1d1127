package geo

import (
	"fmt"
	"strconv"
	"strings"

	"go-gin-event-discovery/internal/model"
)

// CoordKey 快取 key：緯度,經度 各取 6 位小數
func CoordKey(p model.GeoPoint) string {
	return fmt.Sprintf("%.6f,%.6f", p.Latitude, p.Longitude)
}

// FallbackLabel 反查失敗或沒有可用欄位時顯示的座標字串
func FallbackLabel(p model.GeoPoint) string {
	return fmt.Sprintf("%.5f, %.5f", p.Latitude, p.Longitude)
}

// ParseLngLat 解析 "lng,lat" 格式的文字
func ParseLngLat(text string) (model.GeoPoint, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.GeoPoint{}, false
	}
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return model.GeoPoint{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return model.GeoPoint{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return model.GeoPoint{}, false
	}
	p := model.NewGeoPoint(lng, lat)
	if !p.Valid() {
		return model.GeoPoint{}, false
	}
	return p, true
}
