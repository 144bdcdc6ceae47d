package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// SubmissionVisibility controls the submitted-task list endpoint. "all"
// matches the historical behaviour where interns see every submission;
// "own" restricts interns to their own.
type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	RedisURL string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	PhoneRegion          string
	SubmissionVisibility string

	LoginRateLimit time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisURL: os.Getenv("REDIS_URL"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		PhoneRegion:          getEnv("PHONE_REGION", "US"),
		SubmissionVisibility: getEnv("SUBMISSION_VISIBILITY", "all"),
	}

	if cfg.SubmissionVisibility != "all" && cfg.SubmissionVisibility != "own" {
		return nil, fmt.Errorf("invalid SUBMISSION_VISIBILITY: %q", cfg.SubmissionVisibility)
	}

	var err error
	cfg.AccessTTL, err = time.ParseDuration(getEnv("ACCESS_TOKEN_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.RefreshTTL, err = time.ParseDuration(getEnv("REFRESH_TOKEN_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_TOKEN_TTL: %w", err)
	}
	cfg.LoginRateLimit, err = time.ParseDuration(getEnv("LOGIN_RATE_LIMIT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
