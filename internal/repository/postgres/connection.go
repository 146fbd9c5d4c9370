package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"webuddhist/internal/domain"
	"webuddhist/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Collections     string
	Texts           string
	TableOfContents string
	Segments        string
	SegmentMappings string
	TextImages      string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Collections:     fmt.Sprintf("%scollections", prefix),
		Texts:           fmt.Sprintf("%stexts", prefix),
		TableOfContents: fmt.Sprintf("%stable_of_contents", prefix),
		Segments:        fmt.Sprintf("%ssegments", prefix),
		SegmentMappings: fmt.Sprintf("%ssegment_mappings", prefix),
		TextImages:      fmt.Sprintf("%stext_images", prefix),
	}
}

// CreateConnectionPool creates a new pgx connection pool.
//
// Port 6543 is the PgBouncer transaction pooler, which does not support
// prepared statements. Unless the connection string sets
// default_query_exec_mode explicitly, that port is switched to
// QueryExecModeCacheDescribe (extended protocol, no server-side statements).
//
// The initial ping is retried so the server can start alongside the database.
func CreateConnectionPool(ctx context.Context, databaseURL string, logger *slog.Logger) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		logger.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	err = retry.Do(
		func() error { return pool.Ping(ctx) },
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(500*time.Millisecond),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("database ping failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the appropriate query executor for the context.
// A transaction in the context takes precedence over the pool.
// Returns domain.ErrStoreUnavailable when there is neither.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) (repositories.DBTX, error) {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx, nil
	}
	if pool == nil {
		return nil, fmt.Errorf("postgres pool not initialized: %w", domain.ErrStoreUnavailable)
	}
	return pool, nil
}

// ChunkIDs de-duplicates ids (keeping first occurrence order) and splits
// them into slices of at most size elements.
func ChunkIDs(ids []string, size int) [][]string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if size <= 0 {
		size = len(unique)
	}

	var chunks [][]string
	for start := 0; start < len(unique); start += size {
		end := start + size
		if end > len(unique) {
			end = len(unique)
		}
		chunks = append(chunks, unique[start:end])
	}
	return chunks
}
