package geo

import "context"

// Provider 反向地理編碼服務。可能回傳空結果，也可能直接回傳錯誤（離線、權限被拒）
type Provider interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) ([]Place, error)
}

// LabelCache 座標 key 對應顯示字串，session 期間不過期
type LabelCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, label string) error
}
