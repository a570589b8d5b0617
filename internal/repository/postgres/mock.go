package postgres

import (
	"context"
	"sync"

	"github.com/smartcity/weatherlookup/internal/domain"
)

// MockRepository implements domain.SearchLogRepository in memory for demo mode
// and tests. It keeps at most capacity entries, dropping the oldest.
type MockRepository struct {
	mu       sync.RWMutex
	entries  []domain.SearchLog
	capacity int
}

// NewMockRepository creates a new in-memory repository
func NewMockRepository(capacity int) *MockRepository {
	if capacity <= 0 {
		capacity = 100
	}
	return &MockRepository{capacity: capacity}
}

// SaveSearch appends entry, evicting the oldest one when full
func (r *MockRepository) SaveSearch(ctx context.Context, entry domain.SearchLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
	return nil
}

// RecentSearches returns up to limit entries, newest first
func (r *MockRepository) RecentSearches(ctx context.Context, limit int) ([]domain.SearchLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]domain.SearchLog, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}

var _ domain.SearchLogRepository = (*MockRepository)(nil)
