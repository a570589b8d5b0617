package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/weatherlookup/internal/config"
	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/internal/metrics"
)

func TestWeatherService_FirstProviderWins(t *testing.T) {
	primary := &stubProvider{name: "primary", reply: londonReply()}
	secondary := &stubProvider{name: "secondary", reply: londonReply()}
	svc := NewWeatherService([]domain.WeatherProvider{primary, secondary}, nil, nil)

	rec, err := svc.FetchWeather(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "primary", rec.Provider)
	assert.EqualValues(t, 1, primary.calls.Load())
	assert.EqualValues(t, 0, secondary.calls.Load())
}

func TestWeatherService_LayeredProviders(t *testing.T) {
	primary := &stubProvider{name: "primary", err: domain.NewConnectivityError("London", errors.New("dial tcp"))}
	secondary := &stubProvider{name: "secondary", reply: londonReply()}
	svc := NewWeatherService([]domain.WeatherProvider{primary, secondary}, nil, nil)

	rec, err := svc.FetchWeather(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "secondary", rec.Provider)
	assert.False(t, rec.IsSyntheticFallback)
}

func TestWeatherService_ReturnsPrimaryError(t *testing.T) {
	primary := &stubProvider{name: "primary", err: domain.NewNotFoundError("Atlantis", nil)}
	secondary := &stubProvider{name: "secondary", err: domain.NewConnectivityError("Atlantis", errors.New("refused"))}
	svc := NewWeatherService([]domain.WeatherProvider{primary, secondary}, nil, nil)

	_, err := svc.FetchWeather(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.EqualValues(t, 1, secondary.calls.Load())
}

func TestWeatherService_MalformedReplyFallsThrough(t *testing.T) {
	primary := &stubProvider{name: "primary", reply: domain.RawReply{}}
	svc := NewWeatherService([]domain.WeatherProvider{primary}, nil, nil)

	_, err := svc.FetchWeather(context.Background(), "London")
	assert.Equal(t, domain.KindMalformedResponse, domain.KindOf(err))
}

func TestWeatherService_PlainErrorBecomesGeneric(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("boom")}
	svc := NewWeatherService([]domain.WeatherProvider{primary}, nil, nil)

	_, err := svc.FetchWeather(context.Background(), "London")
	var se *domain.SearchError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.KindGeneric, se.Kind)
	assert.Equal(t, domain.MsgGeneric, se.UserMessage())
}

func TestWeatherService_SyntheticFallback(t *testing.T) {
	primary := &stubProvider{name: "primary", err: domain.NewConnectivityError("Tokyo", errors.New("refused"))}
	svc := NewWeatherService([]domain.WeatherProvider{primary}, NewSyntheticProvider(), nil)

	rec, err := svc.FetchWeather(context.Background(), "Tokyo")
	require.NoError(t, err)
	assert.True(t, rec.IsSyntheticFallback)
	assert.Equal(t, "Tokyo", rec.LocationName)
	assert.Equal(t, "Japan", rec.CountryName)
	assert.Equal(t, 22, rec.TemperatureC)
	assert.Equal(t, "synthetic", rec.Provider)
}

func TestWeatherService_SyntheticFallbackOnNotFound(t *testing.T) {
	primary := &stubProvider{name: "primary", err: domain.NewNotFoundError("Atlantis", nil)}
	svc := NewWeatherService([]domain.WeatherProvider{primary}, NewSyntheticProvider(), nil)

	rec, err := svc.FetchWeather(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.True(t, rec.IsSyntheticFallback)
	assert.Equal(t, "Atlantis", rec.LocationName)
	assert.Equal(t, "Unknown", rec.CountryName)
}

func TestWeatherService_NoProviders(t *testing.T) {
	svc := NewWeatherService(nil, nil, nil)

	_, err := svc.FetchWeather(context.Background(), "London")
	assert.Equal(t, domain.KindGeneric, domain.KindOf(err))
}

func TestWeatherService_RecordsMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	primary := &stubProvider{name: "primary", err: domain.NewConnectivityError("London", errors.New("refused"))}
	secondary := &stubProvider{name: "secondary", reply: londonReply()}
	svc := NewWeatherService([]domain.WeatherProvider{primary, secondary}, nil, m)

	_, err := svc.FetchWeather(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderRequests.WithLabelValues("primary", "connectivity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderRequests.WithLabelValues("secondary", "ok")))
}

func TestNewWeatherServiceFromConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(wttrLondonJSON))
	}))
	defer server.Close()

	svc, err := NewWeatherServiceFromConfig(config.WeatherConfig{
		Providers:      []string{config.ProviderWttr},
		RequestTimeout: time.Second,
		WttrBaseURL:    server.URL,
	}, nil)
	require.NoError(t, err)
	assert.Nil(t, svc.fallback)

	rec, err := svc.FetchWeather(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "wttr.in", rec.Provider)
	assert.Equal(t, 15, rec.TemperatureC)
}

func TestNewWeatherServiceFromConfig_Fallback(t *testing.T) {
	svc, err := NewWeatherServiceFromConfig(config.WeatherConfig{
		Providers:          []string{config.ProviderOpenWeatherMap, config.ProviderWttr},
		Fallback:           true,
		RequestTimeout:     time.Second,
		OpenWeatherAPIKey:  "key",
		OpenWeatherBaseURL: "http://127.0.0.1:1",
		WttrBaseURL:        "http://127.0.0.1:1",
	}, nil)
	require.NoError(t, err)
	require.Len(t, svc.providers, 2)
	assert.Equal(t, "OpenWeatherMap", svc.providers[0].Name())
	assert.Equal(t, "wttr.in", svc.providers[1].Name())
	assert.NotNil(t, svc.fallback)
}

func TestNewWeatherServiceFromConfig_UnknownProvider(t *testing.T) {
	_, err := NewWeatherServiceFromConfig(config.WeatherConfig{Providers: []string{"metoffice"}}, nil)
	assert.Error(t, err)
}
