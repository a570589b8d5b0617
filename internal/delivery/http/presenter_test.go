package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/internal/service"
)

func TestViewPresenter(t *testing.T) {
	p := NewViewPresenter()
	p.now = func() time.Time { return time.Date(2024, 3, 1, 9, 5, 7, 0, time.UTC) }
	assert.Equal(t, StateIdle, p.State())

	p.ClearAll()
	p.ShowLoading()
	assert.Equal(t, StateLoading, p.State())
	assert.True(t, p.Loading())

	p.HideLoading()
	p.ShowResult(domain.WeatherRecord{
		LocationName:        "Paris",
		CountryName:         "France",
		TemperatureC:        12,
		FeelsLikeC:          10,
		HumidityPct:         80,
		WindSpeedKmh:        10,
		PressureMb:          1010,
		Description:         "Overcast",
		IsSyntheticFallback: true,
	}, "paris")

	assert.Equal(t, StateResult, p.State())
	assert.False(t, p.Loading())
	view := p.View()
	require.NotNil(t, view)
	assert.Equal(t, "paris", view.Query)
	assert.Equal(t, domain.IconCloudy, view.Icon)
	assert.Equal(t, "Paris, France (Demo Data)", view.Display.CityName)
	assert.Equal(t, "2024-03-01 • 09:05:07", view.Display.CurrentTime)
	assert.Equal(t, []string{"ClearAll", "ShowLoading", "HideLoading", "ShowResult"}, p.Calls())

	p.ShowError("boom")
	assert.Equal(t, StateError, p.State())
	assert.Equal(t, "boom", p.ErrorMessage())
	assert.Nil(t, p.View())
}

func TestViewPresenter_ErrorEndsLoading(t *testing.T) {
	p := NewViewPresenter()
	p.ShowLoading()
	p.ShowError("Please enter a city name")

	assert.Equal(t, StateError, p.State())
	assert.False(t, p.Loading())
}

// blockingSource holds every fetch until release is closed.
type blockingSource struct {
	started chan struct{}
	release chan struct{}
}

func (s *blockingSource) FetchWeather(ctx context.Context, city string) (domain.WeatherRecord, error) {
	close(s.started)
	<-s.release
	return domain.WeatherRecord{LocationName: city, Description: "Clear"}, nil
}

func TestViewPresenter_InvalidSearchSupersedesPending(t *testing.T) {
	source := &blockingSource{started: make(chan struct{}), release: make(chan struct{})}
	p := NewViewPresenter()
	orch := service.NewSearchOrchestrator(source, p, "London", nil)

	pending := make(chan error, 1)
	go func() {
		pending <- orch.OnSearch(context.Background(), "Tokyo")
	}()
	<-source.started

	assert.Error(t, orch.OnSearch(context.Background(), ""))
	close(source.release)
	assert.ErrorIs(t, <-pending, domain.ErrSuperseded)

	assert.Equal(t, StateError, p.State())
	assert.False(t, p.Loading())
	assert.Equal(t, "Please enter a city name", p.ErrorMessage())
	assert.Nil(t, p.View())
	assert.Equal(t, []string{"ClearAll", "ShowLoading", "ShowError"}, p.Calls())
}
