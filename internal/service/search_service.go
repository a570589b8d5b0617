package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/internal/logger"
	"github.com/smartcity/weatherlookup/internal/metrics"
)

// SearchService runs stateless searches for request/response callers and
// records each outcome in the search history.
type SearchService struct {
	source  domain.WeatherSource
	repo    domain.SearchLogRepository
	metrics *metrics.Metrics

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewSearchService creates a new search service
func NewSearchService(source domain.WeatherSource, repo domain.SearchLogRepository, m *metrics.Metrics) *SearchService {
	return &SearchService{
		source:  source,
		repo:    repo,
		metrics: m,
	}
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *SearchService) WaitBackground() {
	s.wgBg.Wait()
}

// Search drives presenter through one search for rawQuery and returns the
// orchestrator's result.
func (s *SearchService) Search(ctx context.Context, presenter domain.Presenter, rawQuery string) error {
	capture := &capturePresenter{next: presenter}
	orch := NewSearchOrchestrator(s.source, capture, "", s.metrics)
	err := orch.OnSearch(ctx, rawQuery)
	if errors.Is(err, domain.ErrSuperseded) {
		return err
	}

	entry := newSearchLog(rawQuery, capture.record, capture.rendered, err)

	// Persist history asynchronously (tracked for graceful shutdown)
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if saveErr := s.repo.SaveSearch(bgCtx, entry); saveErr != nil {
			logger.GetLogger().Errorw("Failed to save search log", "query", rawQuery, "error", saveErr)
		}
	}()

	return err
}

// History returns the newest search log entries.
func (s *SearchService) History(ctx context.Context, limit int) ([]domain.SearchLog, error) {
	return s.repo.RecentSearches(ctx, limit)
}

// Health checks the history store.
func (s *SearchService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}

func newSearchLog(query string, record domain.WeatherRecord, rendered bool, err error) domain.SearchLog {
	entry := domain.SearchLog{
		ID:        uuid.NewString(),
		Query:     query,
		CreatedAt: time.Now().UTC(),
	}
	if rendered {
		temp := record.TemperatureC
		entry.Outcome = domain.OutcomeResult
		entry.LocationName = record.LocationName
		entry.CountryName = record.CountryName
		entry.TemperatureC = &temp
		entry.Synthetic = record.IsSyntheticFallback
		entry.Provider = record.Provider
		return entry
	}

	var se *domain.SearchError
	if errors.As(err, &se) {
		entry.Outcome = string(se.Kind)
		entry.Message = se.UserMessage()
	} else {
		entry.Outcome = string(domain.KindGeneric)
		entry.Message = domain.MsgGeneric
	}
	return entry
}

// capturePresenter forwards every call and remembers the rendered record.
type capturePresenter struct {
	next     domain.Presenter
	record   domain.WeatherRecord
	rendered bool
}

func (p *capturePresenter) ShowLoading() { p.next.ShowLoading() }
func (p *capturePresenter) HideLoading() { p.next.HideLoading() }
func (p *capturePresenter) ClearAll()    { p.next.ClearAll() }

func (p *capturePresenter) ShowError(message string) { p.next.ShowError(message) }

func (p *capturePresenter) ShowResult(record domain.WeatherRecord, originalQuery string) {
	p.record = record
	p.rendered = true
	p.next.ShowResult(record, originalQuery)
}
