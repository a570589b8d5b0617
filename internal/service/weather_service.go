package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartcity/weatherlookup/internal/config"
	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/internal/logger"
	"github.com/smartcity/weatherlookup/internal/metrics"
)

var errNoProviders = errors.New("no weather providers configured")

// WeatherService handles weather data fetching. Providers are tried in order;
// when all of them fail the first provider's error is returned, unless a
// fallback provider is set, in which case its record is returned flagged as
// synthetic.
type WeatherService struct {
	providers []domain.WeatherProvider
	fallback  domain.WeatherProvider
	metrics   *metrics.Metrics
}

// NewWeatherService creates a new weather service. fallback may be nil.
func NewWeatherService(providers []domain.WeatherProvider, fallback domain.WeatherProvider, m *metrics.Metrics) *WeatherService {
	return &WeatherService{
		providers: providers,
		fallback:  fallback,
		metrics:   m,
	}
}

// NewWeatherServiceFromConfig builds the providers named in cfg.Providers.
func NewWeatherServiceFromConfig(cfg config.WeatherConfig, m *metrics.Metrics) (*WeatherService, error) {
	providers := make([]domain.WeatherProvider, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		switch name {
		case config.ProviderWttr:
			providers = append(providers, NewWttrProvider(cfg.WttrBaseURL, cfg.RequestTimeout))
		case config.ProviderOpenWeatherMap:
			providers = append(providers, NewOpenWeatherMapProvider(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.RequestTimeout))
		default:
			return nil, fmt.Errorf("weather: unknown provider %q", name)
		}
	}

	var fallback domain.WeatherProvider
	if cfg.Fallback {
		fallback = NewSyntheticProvider()
	}
	return NewWeatherService(providers, fallback, m), nil
}

// FetchWeather returns a normalized record for city or a *domain.SearchError.
func (s *WeatherService) FetchWeather(ctx context.Context, city string) (domain.WeatherRecord, error) {
	log := logger.GetLogger()

	var primaryErr error
	for i, p := range s.providers {
		rec, err := s.fetchFrom(ctx, p, city, false)
		if err == nil {
			return rec, nil
		}
		if i == 0 {
			primaryErr = err
		}
		log.Warnw("Weather provider failed",
			"provider", p.Name(),
			"city", city,
			"kind", domain.KindOf(err),
			"error", err,
		)
		if ctx.Err() != nil {
			break
		}
	}
	if primaryErr == nil {
		primaryErr = domain.NewGenericError(city, errNoProviders)
	}

	if s.fallback != nil && ctx.Err() == nil {
		rec, err := s.fetchFrom(ctx, s.fallback, city, true)
		if err == nil {
			log.Infow("Serving synthetic weather data",
				"city", city,
				"cause", domain.KindOf(primaryErr),
			)
			return rec, nil
		}
		log.Errorw("Fallback provider failed", "city", city, "error", err)
	}

	return domain.WeatherRecord{}, primaryErr
}

func (s *WeatherService) fetchFrom(ctx context.Context, p domain.WeatherProvider, city string, synthetic bool) (domain.WeatherRecord, error) {
	start := time.Now()
	raw, err := p.Fetch(ctx, city)
	if err != nil {
		var se *domain.SearchError
		if !errors.As(err, &se) {
			err = domain.NewGenericError(city, fmt.Errorf("%s: %w", p.Name(), err))
		}
		s.metrics.ObserveProvider(p.Name(), string(domain.KindOf(err)), time.Since(start))
		return domain.WeatherRecord{}, err
	}

	rec, err := NormalizeReply(city, raw, p.Name(), synthetic)
	if err != nil {
		s.metrics.ObserveProvider(p.Name(), string(domain.KindMalformedResponse), time.Since(start))
		return domain.WeatherRecord{}, err
	}
	s.metrics.ObserveProvider(p.Name(), "ok", time.Since(start))
	return rec, nil
}
