package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/weatherlookup/internal/logger"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	os.Exit(m.Run())
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "ALLOWED_ORIGINS", "DATABASE_URL", "HISTORY_LIMIT",
		"WEATHER_PROVIDERS", "WEATHER_FALLBACK", "REQUEST_TIMEOUT", "DEFAULT_CITY",
		"WTTR_BASE_URL", "OPENWEATHER_BASE_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "*", cfg.AllowedOrigins)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, []string{ProviderWttr}, cfg.Weather.Providers)
	assert.False(t, cfg.Weather.Fallback)
	assert.Equal(t, 10*time.Second, cfg.Weather.RequestTimeout)
	assert.Equal(t, "London", cfg.Weather.DefaultCity)
	assert.Equal(t, "https://wttr.in", cfg.Weather.WttrBaseURL)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Weather.OpenWeatherBaseURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("WEATHER_PROVIDERS", " OpenWeatherMap , wttr ")
	t.Setenv("WEATHER_FALLBACK", "true")
	t.Setenv("OPENWEATHER_API_KEY", "abcdef123456")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("DEFAULT_CITY", "Paris")
	t.Setenv("WTTR_BASE_URL", "http://localhost:9999/")
	t.Setenv("HISTORY_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{ProviderOpenWeatherMap, ProviderWttr}, cfg.Weather.Providers)
	assert.True(t, cfg.Weather.Fallback)
	assert.Equal(t, "abcdef123456", cfg.Weather.OpenWeatherAPIKey)
	assert.Equal(t, 3*time.Second, cfg.Weather.RequestTimeout)
	assert.Equal(t, "Paris", cfg.Weather.DefaultCity)
	assert.Equal(t, "http://localhost:9999", cfg.Weather.WttrBaseURL)
	assert.Equal(t, 25, cfg.HistoryLimit)
}

func TestLoad_InvalidProvider(t *testing.T) {
	t.Setenv("WEATHER_PROVIDERS", "metoffice")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown weather provider")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HistoryLimit: 10,
			Weather: WeatherConfig{
				Providers:      []string{ProviderWttr},
				RequestTimeout: time.Second,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"no providers", func(c *Config) { c.Weather.Providers = nil }, "at least one provider"},
		{"openweathermap without key", func(c *Config) { c.Weather.Providers = []string{ProviderOpenWeatherMap} }, "requires OPENWEATHER_API_KEY"},
		{"duplicate provider", func(c *Config) { c.Weather.Providers = []string{ProviderWttr, ProviderWttr} }, "listed twice"},
		{"zero timeout", func(c *Config) { c.Weather.RequestTimeout = 0 }, "REQUEST_TIMEOUT"},
		{"zero history limit", func(c *Config) { c.HistoryLimit = 0 }, "HISTORY_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
