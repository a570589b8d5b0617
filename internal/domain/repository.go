package domain

import (
	"context"
	"time"
)

// SearchLog is one entry of the search history audit trail.
type SearchLog struct {
	ID           string    `json:"id"`
	Query        string    `json:"query"`
	Outcome      string    `json:"outcome"` // "result" or an ErrorKind
	Message      string    `json:"message,omitempty"`
	LocationName string    `json:"location_name,omitempty"`
	CountryName  string    `json:"country_name,omitempty"`
	TemperatureC *int      `json:"temperature_c,omitempty"`
	Synthetic    bool      `json:"synthetic"`
	Provider     string    `json:"provider,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// OutcomeResult marks a search that rendered a weather record.
const OutcomeResult = "result"

// SearchLogRepository defines the interface for search history persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type SearchLogRepository interface {
	// SaveSearch persists one search outcome
	SaveSearch(ctx context.Context, entry SearchLog) error

	// RecentSearches returns the newest entries first
	RecentSearches(ctx context.Context, limit int) ([]SearchLog, error)

	// Health checks storage connectivity
	Health(ctx context.Context) error
}
