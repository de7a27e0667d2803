package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"discovery-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the response cache on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Init creates the cache table if it does not exist yet
func (r *Repository) Init(ctx context.Context) error {
	sql := `
		CREATE TABLE IF NOT EXISTS api_cache (
			collection   TEXT NOT NULL,
			cache_key    TEXT NOT NULL,
			status       INT NOT NULL,
			content_type TEXT NOT NULL,
			body         TEXT NOT NULL,
			metadata     JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, cache_key)
		);
	`
	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create cache table: %w", err)
	}
	return nil
}

// ReadCached returns the entry stored under the key, or nil when the key is
// absent or older than ttl
func (r *Repository) ReadCached(ctx context.Context, collection string, keyParts []string, ttl time.Duration) (*models.CacheEntry, error) {
	sql := `
		SELECT status, content_type, body, metadata
		FROM api_cache
		WHERE collection = $1 AND cache_key = $2 AND created_at > $3
	`

	cutoff := time.Now().Add(-ttl)
	var entry models.CacheEntry
	err := r.db.QueryRow(ctx, sql, collection, cacheKey(keyParts), cutoff).Scan(
		&entry.Status,
		&entry.ContentType,
		&entry.Body,
		&entry.Metadata,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to read cache entry: %w", err)
	}

	return &entry, nil
}

// WriteCached stores the entry under the key, replacing any previous value.
// The upsert keeps concurrent recomputes of the same key idempotent
func (r *Repository) WriteCached(ctx context.Context, collection string, keyParts []string, entry models.CacheEntry) error {
	sql := `
		INSERT INTO api_cache (collection, cache_key, status, content_type, body, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (collection, cache_key) DO UPDATE SET
			status = EXCLUDED.status,
			content_type = EXCLUDED.content_type,
			body = EXCLUDED.body,
			metadata = EXCLUDED.metadata,
			created_at = EXCLUDED.created_at
	`

	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	_, err := r.db.Exec(ctx, sql, collection, cacheKey(keyParts), entry.Status, entry.ContentType, entry.Body, metadata)
	if err != nil {
		return fmt.Errorf("repository: failed to write cache entry: %w", err)
	}

	return nil
}

func cacheKey(keyParts []string) string {
	return strings.Join(keyParts, "|")
}
