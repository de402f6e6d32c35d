package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

const EnvProduction = "production"

// Config holds all application configuration
type Config struct {
	Environment string
	Database    DatabaseConfig
	Server      ServerConfig
	RateLimit   RateLimitConfig
	Email       EmailConfig
	Redis       RedisConfig
	LaunchEvent LaunchEventConfig
	LogLevel    string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	APIVersion   string
	CORSOrigin   string
	FrontendURL  string
	MaxBodyBytes int64
}

// RateLimitConfig holds the per-IP request budget
type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
}

// EmailConfig holds transactional email settings. An empty ResendAPIKey means
// emails are logged instead of sent.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
	FromName     string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// LaunchEventConfig describes the event that event registrations are scoped to
type LaunchEventConfig struct {
	Slug     string
	Date     string
	Time     string
	Location string
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Sender returns the RFC 5322 from-address used for outgoing mail
func (c EmailConfig) Sender() string {
	if c.FromName == "" {
		return c.FromEmail
	}
	return fmt.Sprintf("%s <%s>", c.FromName, c.FromEmail)
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != EnvProduction {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{
		Environment: getEnvWithDefault("GO_ENV", "development"),
		LogLevel:    strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
	}

	var err error
	if cfg.Database.URL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = getIntEnv("SERVER_PORT", 3000); err != nil {
		return nil, err
	}
	cfg.Server.APIVersion = getEnvWithDefault("API_VERSION", "v1")
	cfg.Server.FrontendURL = strings.TrimRight(getEnvWithDefault("FRONTEND_URL", "http://localhost:3001"), "/")
	cfg.Server.CORSOrigin = getEnvWithDefault("CORS_ORIGIN", os.Getenv("FRONTEND_URL"))
	if cfg.Server.CORSOrigin == "" {
		cfg.Server.CORSOrigin = "*"
	}
	maxBody, err := getIntEnv("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return nil, err
	}
	cfg.Server.MaxBodyBytes = int64(maxBody)

	// Rate limit configuration
	windowMs, err := getIntEnv("RATE_LIMIT_WINDOW_MS", 60*60*1000)
	if err != nil {
		return nil, err
	}
	cfg.RateLimit.Window = time.Duration(windowMs) * time.Millisecond
	if cfg.RateLimit.MaxRequests, err = getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100); err != nil {
		return nil, err
	}
	if windowMs <= 0 || cfg.RateLimit.MaxRequests <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW_MS and RATE_LIMIT_MAX_REQUESTS must be positive")
	}

	// Email configuration
	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromEmail = getEnvWithDefault("FROM_EMAIL", "noreply@adventuretriangle.com")
	cfg.Email.FromName = getEnvWithDefault("FROM_NAME", "Adventure Triangle")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Launch event configuration
	cfg.LaunchEvent.Slug = getEnvWithDefault("LAUNCH_EVENT_SLUG", "launch-2025")
	cfg.LaunchEvent.Date = getEnvWithDefault("LAUNCH_EVENT_DATE", "February 15, 2025")
	cfg.LaunchEvent.Time = getEnvWithDefault("LAUNCH_EVENT_TIME", "6:00 PM - 9:00 PM")
	cfg.LaunchEvent.Location = getEnvWithDefault("LAUNCH_EVENT_LOCATION", "Virtual Event (Link will be sent closer to date)")

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}
