package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-gin-event-discovery/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimProvider_ReverseGeocode(t *testing.T) {
	t.Run("maps address fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/reverse", r.URL.Path)
			assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
			assert.Equal(t, "29.3759", r.URL.Query().Get("lat"))
			assert.Equal(t, "47.9774", r.URL.Query().Get("lon"))
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"Kuwait Towers","address":{"road":"Arabian Gulf St","house_number":"1","town":"Kuwait City","county":"Capital","state":"Al Asimah","country":"Kuwait"}}`))
		}))
		defer server.Close()

		provider := geo.NewNominatimProvider(server.URL+"/", "test-agent", time.Second)
		places, err := provider.ReverseGeocode(context.Background(), 29.3759, 47.9774)
		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Equal(t, geo.Place{
			Name:      "Kuwait Towers",
			Street:    "Arabian Gulf St 1",
			City:      "Kuwait City",
			Subregion: "Capital",
			Region:    "Al Asimah",
			Country:   "Kuwait",
		}, places[0])
	})

	t.Run("error body is empty result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
		}))
		defer server.Close()

		places, err := geo.NewNominatimProvider(server.URL, "", time.Second).ReverseGeocode(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.Empty(t, places)
	})

	t.Run("non 200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := geo.NewNominatimProvider(server.URL, "", time.Second).ReverseGeocode(context.Background(), 0, 0)
		assert.Error(t, err)
	})
}
