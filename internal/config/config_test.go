package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "valid development config",
			config: Config{
				Env:       "development",
				Port:      "3060",
				JWTSecret: "dev-secret",
			},
			expectError: false,
		},
		{
			name: "missing port",
			config: Config{
				Env:       "development",
				JWTSecret: "dev-secret",
			},
			expectError: true,
		},
		{
			name: "missing jwt secret",
			config: Config{
				Env:  "development",
				Port: "3060",
			},
			expectError: true,
		},
		{
			name: "production with default secret",
			config: Config{
				Env:        "production",
				Port:       "3060",
				JWTSecret:  "your-secret-key-change-in-production",
				DBPassword: "strong-password",
			},
			expectError: true,
		},
		{
			name: "production with short secret",
			config: Config{
				Env:        "production",
				Port:       "3060",
				JWTSecret:  "short",
				DBPassword: "strong-password",
			},
			expectError: true,
		},
		{
			name: "production with weak db password",
			config: Config{
				Env:        "production",
				Port:       "3060",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "password",
			},
			expectError: true,
		},
		{
			name: "valid production config",
			config: Config{
				Env:        "production",
				Port:       "3060",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "strong-password",
				DBSSLMode:  "require",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "3060", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, "http://localhost:3000", cfg.SentimentURL)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("SENTIMENT_URL")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("PORT", "9999")
	os.Setenv("SENTIMENT_URL", "http://sentiment:8080")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "http://sentiment:8080", cfg.SentimentURL)
}
