// Package service implements the weather search pipeline: input validation,
// provider adapters, reply normalization, icon classification and the search
// orchestrator that drives a presenter.
package service

import (
	"github.com/smartcity/weatherlookup/internal/domain"
)

// SearchLogRepository is re-exported from domain for convenience
type SearchLogRepository = domain.SearchLogRepository

var _ domain.WeatherSource = (*WeatherService)(nil)
