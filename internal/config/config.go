package config

import "strings"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	// Env mirrors NODE_ENV; only "production" is special.
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFile  string `mapstructure:"log_file"`
	// BaseURL prefixes Location headers, e.g. http://localhost:8000.
	BaseURL        string   `mapstructure:"base_url"         validate:"required,url"`
	CORSOrigins    []string `mapstructure:"cors_origins"`
	RateLimitRPS   float64  `mapstructure:"rate_limit_rps"   validate:"gte=0"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst" validate:"gte=1"`
}

// AuthConfig contains authorization settings.
type AuthConfig struct {
	// APIToken is the shared secret expected in "Authorization: Bearer <token>".
	APIToken string `mapstructure:"api_token" validate:"required"`
}

// IsProduction reports whether the service runs in production mode, which
// hides error details from clients and switches logs to JSON.
func (c ServerConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
