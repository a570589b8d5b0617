package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/internal/logger"
	"github.com/smartcity/weatherlookup/internal/metrics"
)

// SearchOrchestrator runs one search per trigger: validate, show loading,
// fetch, then render the record or the error message.
//
// Every call takes a sequence token. A result whose token is no longer the
// latest is dropped without touching the presenter, so a slow reply can never
// overwrite a newer search.
type SearchOrchestrator struct {
	source      domain.WeatherSource
	presenter   domain.Presenter
	defaultCity string
	metrics     *metrics.Metrics

	seq atomic.Uint64
}

// NewSearchOrchestrator creates an orchestrator. m may be nil.
func NewSearchOrchestrator(source domain.WeatherSource, presenter domain.Presenter, defaultCity string, m *metrics.Metrics) *SearchOrchestrator {
	return &SearchOrchestrator{
		source:      source,
		presenter:   presenter,
		defaultCity: defaultCity,
		metrics:     m,
	}
}

// Start runs the initial search for the default city.
func (o *SearchOrchestrator) Start(ctx context.Context) error {
	return o.OnSearch(ctx, o.defaultCity)
}

// OnSearch handles one search trigger. It returns nil when a record was
// rendered, a *domain.SearchError when an error message was shown, and
// domain.ErrSuperseded when a newer search took over before the reply arrived.
func (o *SearchOrchestrator) OnSearch(ctx context.Context, rawInput string) error {
	token := o.seq.Add(1)
	log := logger.GetLogger()

	validation := ValidateCityName(rawInput)
	if !validation.Valid {
		o.presenter.ShowError(validation.Message)
		o.metrics.ObserveSearch(string(domain.KindValidation))
		return domain.NewValidationError(rawInput, validation.Message)
	}

	city := strings.TrimSpace(rawInput)
	o.presenter.ClearAll()
	o.presenter.ShowLoading()

	record, err := o.source.FetchWeather(ctx, city)

	if o.seq.Load() != token {
		log.Debugw("Discarding stale search result", "city", city, "token", token)
		return domain.ErrSuperseded
	}

	o.presenter.HideLoading()
	if err != nil {
		var se *domain.SearchError
		if !errors.As(err, &se) {
			se = domain.NewGenericError(city, err)
		}
		o.presenter.ShowError(se.UserMessage())
		o.metrics.ObserveSearch(string(se.Kind))
		log.Infow("Search failed", "city", city, "kind", se.Kind, "error", se.Err)
		return se
	}

	o.presenter.ShowResult(record, rawInput)
	o.metrics.ObserveSearch(domain.OutcomeResult)
	log.Debugw("Search rendered", "city", city, "provider", record.Provider, "synthetic", record.IsSyntheticFallback)
	return nil
}
