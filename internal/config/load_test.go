package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv clears every recognised variable and then applies envVars.
// t.Setenv restores the original values when the test ends.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for _, name := range envBindings {
		t.Setenv(name, "")
	}
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// writeEnvFile writes a dotenv file into a temp dir and returns its path.
func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when only the required token is provided.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"API_TOKEN": "secret-token",
	})

	cfg, err := LoadFrom("")

	require.NoError(t, err, "LoadFrom() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8000, cfg.Server.Port, "Default server port should be 8000")
	assert.Equal(t, "development", cfg.Server.Env)
	assert.False(t, cfg.Server.IsProduction())
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Development defaults to debug logging")
	assert.Equal(t, "http://localhost:8000", cfg.Server.BaseURL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, float64(0), cfg.Server.RateLimitRPS)
	assert.Equal(t, 20, cfg.Server.RateLimitBurst)
	assert.Empty(t, cfg.Server.LogFile)
	assert.Equal(t, "secret-token", cfg.Auth.APIToken)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"PORT":             "9090",
		"NODE_ENV":         "production",
		"LOG_LEVEL":        "WARN",
		"LOG_FILE":         "/tmp/info.log",
		"BASE_URL":         "https://trelloyes.example.com/",
		"CORS_ORIGINS":     "https://a.example.com,https://b.example.com",
		"RATE_LIMIT_RPS":   "2.5",
		"RATE_LIMIT_BURST": "5",
		"API_TOKEN":        "env-token",
	})

	cfg, err := LoadFrom("")

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, "/tmp/info.log", cfg.Server.LogFile)
	assert.Equal(t, "https://trelloyes.example.com", cfg.Server.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 2.5, cfg.Server.RateLimitRPS)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, "env-token", cfg.Auth.APIToken)
}

func TestLoadProductionDefaultsToInfo(t *testing.T) {
	setupEnv(t, map[string]string{
		"NODE_ENV":  "production",
		"API_TOKEN": "secret-token",
	})

	cfg, err := LoadFrom("")

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoadBaseURLFollowsPort(t *testing.T) {
	setupEnv(t, map[string]string{
		"PORT":      "3000",
		"API_TOKEN": "secret-token",
	})

	cfg, err := LoadFrom("")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.Server.BaseURL)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := writeEnvFile(t, "PORT=7000\nAPI_TOKEN=file-token\nNODE_ENV=production\n")

	t.Run("file values apply", func(t *testing.T) {
		setupEnv(t, nil)

		cfg, err := LoadFrom(path)

		require.NoError(t, err)
		assert.Equal(t, 7000, cfg.Server.Port)
		assert.Equal(t, "file-token", cfg.Auth.APIToken)
		assert.True(t, cfg.Server.IsProduction())
	})

	t.Run("environment overrides file", func(t *testing.T) {
		setupEnv(t, map[string]string{
			"API_TOKEN": "env-token",
		})

		cfg, err := LoadFrom(path)

		require.NoError(t, err)
		assert.Equal(t, 7000, cfg.Server.Port)
		assert.Equal(t, "env-token", cfg.Auth.APIToken)
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		setupEnv(t, map[string]string{
			"API_TOKEN": "env-token",
		})

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.env"))

		require.NoError(t, err)
		assert.Equal(t, 8000, cfg.Server.Port)
	})
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Missing API token",
			envVars:        map[string]string{"PORT": "9090"},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"PORT":      "999999",
				"API_TOKEN": "secret-token",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "verbose",
				"API_TOKEN": "secret-token",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid base URL",
			envVars: map[string]string{
				"BASE_URL":  "not a url",
				"API_TOKEN": "secret-token",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Negative rate limit",
			envVars: map[string]string{
				"RATE_LIMIT_RPS": "-1",
				"API_TOKEN":      "secret-token",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Zero burst",
			envVars: map[string]string{
				"RATE_LIMIT_BURST": "0",
				"API_TOKEN":        "secret-token",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Non-numeric port",
			envVars: map[string]string{
				"PORT":      "eighty",
				"API_TOKEN": "secret-token",
			},
			errorSubstring: "failed to unmarshal configuration",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := LoadFrom("")

			require.Error(t, err, "LoadFrom() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
