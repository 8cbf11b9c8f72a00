package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	defaultPort           = 8000
	defaultEnv            = "development"
	defaultRateLimitBurst = 20
	defaultEnvFile        = ".env"
)

// envBindings maps configuration keys to the environment variables that set them.
var envBindings = map[string]string{
	"server.port":             "PORT",
	"server.env":              "NODE_ENV",
	"server.log_level":        "LOG_LEVEL",
	"server.log_file":         "LOG_FILE",
	"server.base_url":         "BASE_URL",
	"server.cors_origins":     "CORS_ORIGINS",
	"server.rate_limit_rps":   "RATE_LIMIT_RPS",
	"server.rate_limit_burst": "RATE_LIMIT_BURST",
	"auth.api_token":          "API_TOKEN",
}

// Load configuration from environment variables and an optional .env file in
// the working directory. Environment variables take precedence over values
// from the file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(defaultEnvFile)
}

// LoadFrom behaves like Load but reads the dotenv file at envFile.
// A missing file is not an error; an empty envFile skips file loading.
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()

	// 1. Set default values
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.env", defaultEnv)
	v.SetDefault("server.log_level", "")
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.base_url", "")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit_rps", 0)
	v.SetDefault("server.rate_limit_burst", defaultRateLimitBurst)
	v.SetDefault("auth.api_token", "")

	// 2. Values from the dotenv file override the defaults
	if envFile != "" {
		if err := applyEnvFile(v, envFile); err != nil {
			return nil, err
		}
	}

	// 3. Environment variables override everything else
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	// 4. Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	applyDerivedDefaults(&cfg)

	// 5. Validate config
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvFile reads KEY=value pairs from path and installs them as defaults
// so real environment variables still win.
func applyEnvFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	fileV := viper.New()
	fileV.SetConfigFile(path)
	fileV.SetConfigType("env")
	if err := fileV.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	for key, env := range envBindings {
		// dotenv keys are lower-cased by viper
		name := strings.ToLower(env)
		if fileV.IsSet(name) {
			v.SetDefault(key, fileV.Get(name))
		}
	}
	return nil
}

// applyDerivedDefaults fills settings whose default depends on other settings.
func applyDerivedDefaults(cfg *Config) {
	if cfg.Server.LogLevel == "" {
		if cfg.Server.IsProduction() {
			cfg.Server.LogLevel = "info"
		} else {
			cfg.Server.LogLevel = "debug"
		}
	}
	cfg.Server.LogLevel = strings.ToLower(cfg.Server.LogLevel)

	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	cfg.Server.BaseURL = strings.TrimRight(cfg.Server.BaseURL, "/")

	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
}
