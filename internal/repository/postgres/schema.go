package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"webuddhist/internal/domain/repositories"
)

// Schema creates and drops the prefixed tables read by the repositories
type Schema struct {
	pool   *pgxpool.Pool
	tables *TableNames
	tm     repositories.TransactionManager
}

func NewSchema(config *RepositoryConfig, tm repositories.TransactionManager) *Schema {
	return &Schema{pool: config.Pool, tables: config.Tables, tm: tm}
}

// CreateStatements returns the DDL in dependency order
func (s *Schema) CreateStatements() []string {
	t := s.tables
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			parent_id TEXT
		)`, t.Collections),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			language TEXT NOT NULL,
			group_id TEXT NOT NULL,
			type TEXT NOT NULL,
			collection_id TEXT REFERENCES %s(id),
			published_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, t.Texts, t.Collections),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_group_idx ON %s (group_id)`, t.Texts, t.Texts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			text_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			order_index INTEGER NOT NULL DEFAULT 0,
			sections JSONB NOT NULL DEFAULT '[]'
		)`, t.TableOfContents, t.Texts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			text_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			type TEXT NOT NULL,
			variant TEXT,
			language TEXT NOT NULL
		)`, t.Segments, t.Texts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			segment_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			text_id TEXT NOT NULL,
			mapped_segment_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			PRIMARY KEY (segment_id, mapped_segment_id)
		)`, t.SegmentMappings, t.Segments, t.Segments),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_mapped_idx ON %s (mapped_segment_id)`, t.SegmentMappings, t.SegmentMappings),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			text_id TEXT PRIMARY KEY REFERENCES %s(id) ON DELETE CASCADE,
			image_key TEXT NOT NULL
		)`, t.TextImages, t.Texts),
	}
}

// DropStatements returns the DDL that removes every table, dependents first
func (s *Schema) DropStatements() []string {
	t := s.tables
	names := []string{t.TextImages, t.SegmentMappings, t.Segments, t.TableOfContents, t.Texts, t.Collections}
	stmts := make([]string, 0, len(names))
	for _, name := range names {
		stmts = append(stmts, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", name))
	}
	return stmts
}

// Create applies CreateStatements in one transaction
func (s *Schema) Create(ctx context.Context) error {
	return s.exec(ctx, s.CreateStatements())
}

// Drop applies DropStatements in one transaction
func (s *Schema) Drop(ctx context.Context) error {
	return s.exec(ctx, s.DropStatements())
}

func (s *Schema) exec(ctx context.Context, stmts []string) error {
	return s.tm.ExecTx(ctx, func(txCtx context.Context) error {
		executor, err := GetExecutor(txCtx, s.pool)
		if err != nil {
			return err
		}
		for _, stmt := range stmts {
			if _, err := executor.Exec(txCtx, stmt); err != nil {
				return fmt.Errorf("exec schema statement: %w", err)
			}
		}
		return nil
	})
}
