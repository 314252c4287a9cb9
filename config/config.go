package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration. DBDriver is "postgres" or "sqlite".
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration, used for rate limiting
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	RateLimitRequests int
	RateLimitWindow   time.Duration

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	// Catalog exports
	S3BucketName string
	AWSRegion    string
}

// LoadConfig builds a Config from environment variables, docker secrets and defaults
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	cfg := &Config{
		Environment: env,
		ServerPort:  lookup("SERVER_PORT", "8080"),
		ServerHost:  lookup("SERVER_HOST", "0.0.0.0"),

		DBDriver:   strings.ToLower(lookup("DB_DRIVER", "postgres")),
		DBHost:     lookup("DB_HOST", "localhost"),
		DBPort:     lookup("DB_PORT", "5432"),
		DBUser:     lookup("DB_USER", ""),
		DBPassword: lookup("DB_PASSWORD", ""),
		DBName:     lookup("DB_NAME", "recipes"),
		DBSSLMode:  lookup("DB_SSL_MODE", "disable"),
		SQLitePath: lookup("SQLITE_PATH", "recipes.db"),

		RedisURL:      lookup("REDIS_URL", ""),
		RedisHost:     lookup("REDIS_HOST", ""),
		RedisPort:     lookup("REDIS_PORT", "6379"),
		RedisPassword: lookup("REDIS_PASSWORD", ""),

		CORSAllowedOrigins: splitList(lookup("CORS_ALLOWED_ORIGINS", "http://localhost:4200")),

		LogLevel:  lookup("LOG_LEVEL", "info"),
		LogFormat: lookup("LOG_FORMAT", "json"),

		S3BucketName: lookup("S3_BUCKET_NAME", ""),
		AWSRegion:    lookup("AWS_REGION", "us-east-1"),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(lookup("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.RateLimitRequests, err = strconv.Atoi(lookup("RATE_LIMIT_REQUESTS", "60")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
	}
	if cfg.RateLimitWindow, err = time.ParseDuration(lookup("RATE_LIMIT_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// PostgresDSN returns the connection string for the postgres driver
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisEnabled reports whether a Redis endpoint is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// lookup reads an environment variable, then the docker secret of the same
// name in lower case, then falls back to def.
func lookup(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	if v := readSecret(strings.ToLower(key)); v != "" {
		return v
	}
	return def
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
