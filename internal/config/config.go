// Package config loads service configuration from the environment (and an
// optional .env file).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/smartcity/weatherlookup/internal/logger"
)

// Provider names accepted in WEATHER_PROVIDERS.
const (
	ProviderWttr           = "wttr"
	ProviderOpenWeatherMap = "openweathermap"
)

// Config holds everything the server and the terminal client need.
type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins string
	DatabaseURL    string
	HistoryLimit   int

	Weather WeatherConfig
}

// WeatherConfig selects and configures the upstream providers.
type WeatherConfig struct {
	Providers          []string
	Fallback           bool
	RequestTimeout     time.Duration
	DefaultCity        string
	WttrBaseURL        string
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	log := logger.GetLogger()

	if err := godotenv.Load(); err != nil {
		log.Debugw("No .env file found, using system environment")
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("HISTORY_LIMIT", 100)
	v.SetDefault("WEATHER_PROVIDERS", ProviderWttr)
	v.SetDefault("WEATHER_FALLBACK", false)
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("DEFAULT_CITY", "London")
	v.SetDefault("WTTR_BASE_URL", "https://wttr.in")
	v.SetDefault("OPENWEATHER_API_KEY", "")
	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		Environment:    v.GetString("ENVIRONMENT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		AllowedOrigins: v.GetString("ALLOWED_ORIGINS"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		HistoryLimit:   v.GetInt("HISTORY_LIMIT"),
		Weather: WeatherConfig{
			Providers:          splitList(v.GetString("WEATHER_PROVIDERS")),
			Fallback:           v.GetBool("WEATHER_FALLBACK"),
			RequestTimeout:     v.GetDuration("REQUEST_TIMEOUT"),
			DefaultCity:        v.GetString("DEFAULT_CITY"),
			WttrBaseURL:        strings.TrimRight(v.GetString("WTTR_BASE_URL"), "/"),
			OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
			OpenWeatherBaseURL: strings.TrimRight(v.GetString("OPENWEATHER_BASE_URL"), "/"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"providers", cfg.Weather.Providers,
		"fallback", cfg.Weather.Fallback,
		"request_timeout", cfg.Weather.RequestTimeout,
		"openweather_api_key", logger.MaskSecret(cfg.Weather.OpenWeatherAPIKey),
		"history_backend", historyBackend(cfg.DatabaseURL),
	)

	return cfg, nil
}

// Validate checks provider selection and limits.
func (c *Config) Validate() error {
	if len(c.Weather.Providers) == 0 {
		return fmt.Errorf("WEATHER_PROVIDERS must name at least one provider")
	}
	seen := make(map[string]bool, len(c.Weather.Providers))
	for _, p := range c.Weather.Providers {
		switch p {
		case ProviderWttr:
		case ProviderOpenWeatherMap:
			if c.Weather.OpenWeatherAPIKey == "" {
				return fmt.Errorf("provider %q requires OPENWEATHER_API_KEY", p)
			}
		default:
			return fmt.Errorf("unknown weather provider %q", p)
		}
		if seen[p] {
			return fmt.Errorf("weather provider %q listed twice", p)
		}
		seen[p] = true
	}
	if c.Weather.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.Weather.RequestTimeout)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	return nil
}

// IsProduction reports whether ENVIRONMENT is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func historyBackend(databaseURL string) string {
	if databaseURL == "" {
		return "memory"
	}
	return "postgres"
}
