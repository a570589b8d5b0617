package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/smartcity/weatherlookup/internal/domain"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

const schema = `
	CREATE TABLE IF NOT EXISTS search_logs (
		id            UUID PRIMARY KEY,
		query         TEXT NOT NULL,
		outcome       TEXT NOT NULL,
		message       TEXT NOT NULL DEFAULT '',
		location_name TEXT NOT NULL DEFAULT '',
		country_name  TEXT NOT NULL DEFAULT '',
		temperature_c INTEGER,
		synthetic     BOOLEAN NOT NULL DEFAULT FALSE,
		provider      TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_search_logs_created_at ON search_logs (created_at DESC);
`

// PostgresRepository implements domain.SearchLogRepository
type PostgresRepository struct {
	pool DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool DB) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the search_logs table if it does not exist
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to create schema: %w", err)
	}
	return nil
}

// SaveSearch persists one search outcome to PostgreSQL
func (r *PostgresRepository) SaveSearch(ctx context.Context, entry domain.SearchLog) error {
	query := `
		INSERT INTO search_logs (
			id, query, outcome, message, location_name, country_name,
			temperature_c, synthetic, provider, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.Query, entry.Outcome, entry.Message, entry.LocationName, entry.CountryName,
		entry.TemperatureC, entry.Synthetic, entry.Provider, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save search log: %w", err)
	}

	return nil
}

// RecentSearches retrieves the newest search logs from PostgreSQL
func (r *PostgresRepository) RecentSearches(ctx context.Context, limit int) ([]domain.SearchLog, error) {
	query := `
		SELECT id, query, outcome, message, location_name, country_name,
			   temperature_c, synthetic, provider, created_at
		FROM search_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query search logs: %w", err)
	}
	defer rows.Close()

	results := make([]domain.SearchLog, 0, limit)
	for rows.Next() {
		var l domain.SearchLog
		err := rows.Scan(
			&l.ID, &l.Query, &l.Outcome, &l.Message, &l.LocationName, &l.CountryName,
			&l.TemperatureC, &l.Synthetic, &l.Provider, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan search log row: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read search logs: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

var _ domain.SearchLogRepository = (*PostgresRepository)(nil)
