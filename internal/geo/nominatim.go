package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// NominatimProvider 透過 Nominatim 相容的 /reverse API 反查地名
type NominatimProvider struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimProvider(baseURL, userAgent string, timeout time.Duration) *NominatimProvider {
	return &NominatimProvider{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type nominatimAddress struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	County      string `json:"county"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

type nominatimReverseResponse struct {
	Name    string            `json:"name"`
	Address *nominatimAddress `json:"address,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func (p *NominatimProvider) ReverseGeocode(ctx context.Context, latitude, longitude float64) ([]Place, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create reverse request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send reverse request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geocoder error: %s - %s", resp.Status, string(body))
	}

	var result nominatimReverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode reverse response: %w", err)
	}

	// 海上或無資料的座標回傳 {"error": "..."}，視為空結果
	if result.Error != "" || result.Address == nil {
		return []Place{}, nil
	}

	addr := result.Address
	street := strings.TrimSpace(strings.Join([]string{addr.Road, addr.HouseNumber}, " "))
	city := firstNonEmpty(addr.City, addr.Town, addr.Village)

	return []Place{{
		Name:      result.Name,
		Street:    street,
		City:      city,
		Subregion: addr.County,
		Region:    addr.State,
		Country:   addr.Country,
	}}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
