package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requirement checks one field of a loaded config
type requirement struct {
	field string
	check func(*Config) bool
	msg   string
}

var (
	postgresCredentials = []requirement{
		{"DB_HOST", func(c *Config) bool { return c.DBDriver != "postgres" || c.DBHost != "" }, "is required for the postgres driver"},
		{"DB_USER", func(c *Config) bool { return c.DBDriver != "postgres" || c.DBUser != "" }, "is required for the postgres driver"},
		{"DB_PASSWORD", func(c *Config) bool { return c.DBDriver != "postgres" || c.DBPassword != "" }, "is required for the postgres driver"},
		{"DB_NAME", func(c *Config) bool { return c.DBDriver != "postgres" || c.DBName != "" }, "is required for the postgres driver"},
	}

	// Environment-specific requirements
	requirements = map[Environment][]requirement{
		Development: postgresCredentials,
		Test:        nil,
		CI:          postgresCredentials,
		Production: append([]requirement{
			{"DB_DRIVER", func(c *Config) bool { return c.DBDriver == "postgres" }, "must be postgres in production"},
			{"CORS_ALLOWED_ORIGINS", func(c *Config) bool { return len(c.CORSAllowedOrigins) > 0 }, "must list at least one origin"},
		}, postgresCredentials...),
	}
)

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs []string

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}
	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "is required"}.Error())
	}
	if cfg.RateLimitRequests < 1 {
		errs = append(errs, ValidationError{"RATE_LIMIT_REQUESTS", "must be positive"}.Error())
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, ValidationError{"RATE_LIMIT_WINDOW", "must be positive"}.Error())
	}

	for _, req := range requirements[cfg.Environment] {
		if !req.check(cfg) {
			errs = append(errs, ValidationError{req.field, req.msg}.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}

	return nil
}
