package config_test

import (
	"testing"
	"time"

	"go-gin-event-discovery/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "API_BASE_URL", "API_TIMEOUT", "REDIS_ENABLED", "REDIS_DB",
		"PREFETCH_WORKERS", "PREFETCH_BUFFER", "ENGAGEMENT_SERIALIZE_TOGGLES", "GEOCODER_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := config.LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocoder.URL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 2, cfg.Prefetch.Workers)
	assert.Equal(t, 256, cfg.Prefetch.BufferSize)
	assert.False(t, cfg.Engagement.SerializeToggles)
	assert.Same(t, cfg, config.AppConfig)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("API_BASE_URL", "https://events.example.com/api/")
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("PREFETCH_WORKERS", "8")
	t.Setenv("ENGAGEMENT_SERIALIZE_TOGGLES", "true")

	cfg := config.LoadConfig()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://events.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 4, cfg.Redis.DB)
	assert.Equal(t, 8, cfg.Prefetch.Workers)
	assert.True(t, cfg.Engagement.SerializeToggles)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	t.Setenv("PREFETCH_WORKERS", "-1")
	t.Setenv("REDIS_ENABLED", "maybe")

	cfg := config.LoadConfig()

	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.Prefetch.Workers)
	assert.False(t, cfg.Redis.Enabled)
}

func TestServerConfig_Location(t *testing.T) {
	assert.Equal(t, time.Local, config.ServerConfig{Timezone: "Local"}.Location())
	assert.Equal(t, time.Local, config.ServerConfig{Timezone: "Nowhere/Invalid"}.Location())
	assert.Equal(t, "UTC", config.ServerConfig{Timezone: "UTC"}.Location().String())
}
