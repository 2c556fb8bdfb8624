package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL     string
	JWTSecret       string
	Port            string
	PublicBaseURL   string
	StorageBaseURL  string
	UploadBucket    string
	RedisAddr       string
	RedisPassword   string
	CacheTTL        time.Duration
	PhoneRegion     string
	RateLimitBulk   RateLimitConfig
	RateLimitUpload RateLimitConfig
	TokenTTL        time.Duration
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		Port:           getEnv("PORT", "8080"),
		PublicBaseURL:  strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		StorageBaseURL: getEnv("STORAGE_BASE_URL", "http://objectstore:9000"),
		UploadBucket:   getEnv("UPLOAD_BUCKET", "career-assets"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		CacheTTL:       parseDurationDefault(getEnv("CACHE_TTL", "5m"), 5*time.Minute),
		PhoneRegion:    getEnv("PHONE_REGION", "US"),
		TokenTTL:       parseDurationDefault(getEnv("JWT_TTL", "24h"), 24*time.Hour),
	}

	bulk, err := parseRateLimit(getEnv("RATE_LIMIT_BULK", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BULK value: %w", err)
	}
	cfg.RateLimitBulk = bulk

	upload, err := parseRateLimit(getEnv("RATE_LIMIT_UPLOAD", "20/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_UPLOAD value: %w", err)
	}
	cfg.RateLimitUpload = upload

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return fallback
	}
	return d
}
