package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	API        APIConfig
	Geocoder   GeocoderConfig
	Redis      RedisConfig
	Prefetch   PrefetchConfig
	Engagement EngagementConfig
}

type ServerConfig struct {
	Port     string
	GinMode  string
	LogLevel string
	Timezone string
}

// APIConfig 後端 REST API 連線設定
type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// GeocoderConfig 反向地理編碼服務 (Nominatim 相容)
type GeocoderConfig struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	// 空字串時每個 process 產生新的 namespace，維持「重啟即清空」的快取生命週期
	LabelNamespace string
}

type PrefetchConfig struct {
	Workers    int
	BufferSize int
}

type EngagementConfig struct {
	SerializeToggles bool
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env 為選用，不存在時直接使用環境變數
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:     GetServerConfig(),
		API:        GetAPIConfig(),
		Geocoder:   GetGeocoderConfig(),
		Redis:      GetRedisConfig(),
		Prefetch:   GetPrefetchConfig(),
		Engagement: GetEngagementConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testRedisConfig := RedisConfig{
		Enabled:        true,
		Host:           "localhost",
		Port:           "6380", // 測試 Redis 用 6380 port
		Password:       "",
		DB:             1,
		LabelNamespace: "test",
	}

	return &Config{
		Server: ServerConfig{
			Port:     "0",
			GinMode:  "test",
			LogLevel: "debug",
			Timezone: "UTC",
		},
		API: APIConfig{
			BaseURL: "http://localhost:8000/api",
			Timeout: 2 * time.Second,
		},
		Geocoder: GeocoderConfig{
			URL:       "http://localhost:8081",
			UserAgent: "event-discovery-test",
			Timeout:   time.Second,
		},
		Redis: testRedisConfig,
		Prefetch: PrefetchConfig{
			Workers:    1,
			BufferSize: 8,
		},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:     getEnv("SERVER_PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "release"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("TIMEZONE", "Local"),
	}
}

func GetAPIConfig() APIConfig {
	return APIConfig{
		BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000/api"), "/"),
		Token:   getEnv("API_TOKEN", ""),
		Timeout: getDurationEnv("API_TIMEOUT", 10*time.Second),
	}
}

func GetGeocoderConfig() GeocoderConfig {
	return GeocoderConfig{
		URL:       strings.TrimRight(getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"), "/"),
		UserAgent: getEnv("GEOCODER_USER_AGENT", "go-gin-event-discovery/1.0"),
		Timeout:   getDurationEnv("GEOCODER_TIMEOUT", 5*time.Second),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Enabled:        getBoolEnv("REDIS_ENABLED", false),
		Host:           getEnv("REDIS_HOST", "localhost"),
		Port:           getEnv("REDIS_PORT", "6379"),
		Password:       getEnv("REDIS_PASSWORD", ""),
		DB:             db,
		LabelNamespace: getEnv("REDIS_LABEL_NAMESPACE", ""),
	}
}

func GetPrefetchConfig() PrefetchConfig {
	return PrefetchConfig{
		Workers:    getIntEnv("PREFETCH_WORKERS", 2),
		BufferSize: getIntEnv("PREFETCH_BUFFER", 256),
	}
}

func GetEngagementConfig() EngagementConfig {
	return EngagementConfig{
		SerializeToggles: getBoolEnv("ENGAGEMENT_SERIALIZE_TOGGLES", false),
	}
}

// Location 解析 Timezone；無法辨識時退回系統時區
func (c ServerConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getBoolEnv(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
