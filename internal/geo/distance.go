package geo

import (
	"fmt"
	"math"

	"go-gin-event-discovery/internal/model"
)

const (
	earthRadiusKm       = 6371.0
	DefaultCitySpeedKmh = 40.0
)

// 沒有任何座標時的預設地圖中心（科威特市）
var defaultRegion = model.Region{
	Latitude:       29.3759,
	Longitude:      47.9774,
	LatitudeDelta:  0.05,
	LongitudeDelta: 0.05,
}

// Distance Haversine 公式，單位公里
func Distance(a, b model.GeoPoint) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FormatDistance 例如 "500m away"、"2.3km away"
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm away", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm away", km)
}

// EstimateTravelTime 以平均時速估算車程，例如 "15 min"、"1h 30m"
func EstimateTravelTime(km, speedKmh float64) string {
	if speedKmh <= 0 {
		speedKmh = DefaultCitySpeedKmh
	}
	minutes := int(math.Round(km / speedKmh * 60))
	switch {
	case minutes < 1:
		return "< 1 min"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	default:
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
}

// RegionFor 計算包含所有座標的地圖範圍，pad 為額外邊界
func RegionFor(points []model.GeoPoint, pad float64) model.Region {
	if len(points) == 0 {
		return defaultRegion
	}
	minLat, maxLat := points[0].Latitude, points[0].Latitude
	minLng, maxLng := points[0].Longitude, points[0].Longitude
	for _, p := range points[1:] {
		minLat = math.Min(minLat, p.Latitude)
		maxLat = math.Max(maxLat, p.Latitude)
		minLng = math.Min(minLng, p.Longitude)
		maxLng = math.Max(maxLng, p.Longitude)
	}

	region := model.Region{
		Latitude:       (minLat + maxLat) / 2,
		Longitude:      (minLng + maxLng) / 2,
		LatitudeDelta:  maxLat - minLat + pad,
		LongitudeDelta: maxLng - minLng + pad,
	}
	if region.LatitudeDelta == 0 {
		region.LatitudeDelta = defaultRegion.LatitudeDelta
	}
	if region.LongitudeDelta == 0 {
		region.LongitudeDelta = defaultRegion.LongitudeDelta
	}
	return region
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
