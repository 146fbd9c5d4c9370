package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	models "webuddhist/internal/domain/models/recitation"
	"webuddhist/internal/domain/repositories"
	"webuddhist/internal/repository/postgres"
)

// Dataset is a self-contained set of recitation rows
type Dataset struct {
	Collections []models.Collection
	Texts       []models.Text
	Contents    []models.TableOfContent
	Segments    []models.Segment // Mappings become segment_mappings rows
	Images      []models.TextImage
}

// RecitationSeeder loads a Dataset into the prefixed tables
type RecitationSeeder struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	tm     repositories.TransactionManager
	logger *slog.Logger
}

func NewRecitationSeeder(config *postgres.RepositoryConfig, tm repositories.TransactionManager) *RecitationSeeder {
	return &RecitationSeeder{
		pool:   config.Pool,
		tables: config.Tables,
		tm:     tm,
		logger: config.Logger,
	}
}

// Seed inserts the dataset in one transaction. Existing rows are left alone
// so seeding twice is harmless.
func (s *RecitationSeeder) Seed(ctx context.Context, ds *Dataset) error {
	return s.tm.ExecTx(ctx, func(txCtx context.Context) error {
		executor, err := postgres.GetExecutor(txCtx, s.pool)
		if err != nil {
			return err
		}

		for _, c := range ds.Collections {
			query := `INSERT INTO ` + s.tables.Collections + ` (id, slug, parent_id)
				VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`
			if _, err := executor.Exec(txCtx, query, c.ID, c.Slug, c.ParentID); err != nil {
				return fmt.Errorf("insert collection %s: %w", c.Slug, err)
			}
		}

		for _, t := range ds.Texts {
			query := `INSERT INTO ` + s.tables.Texts + ` (id, title, language, group_id, type, collection_id, published_date)
				VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (id) DO NOTHING`
			if _, err := executor.Exec(txCtx, query, t.ID, t.Title, t.Language, t.GroupID, string(t.Type), t.CollectionID, t.PublishedDate); err != nil {
				return fmt.Errorf("insert text %s: %w", t.ID, err)
			}
		}

		for _, toc := range ds.Contents {
			sections, err := json.Marshal(toc.Sections)
			if err != nil {
				return fmt.Errorf("marshal sections of %s: %w", toc.ID, err)
			}
			query := `INSERT INTO ` + s.tables.TableOfContents + ` (id, text_id, order_index, sections)
				VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`
			if _, err := executor.Exec(txCtx, query, toc.ID, toc.TextID, toc.Order, sections); err != nil {
				return fmt.Errorf("insert table of contents %s: %w", toc.ID, err)
			}
		}

		// Segments first: mappings reference both ends
		for _, seg := range ds.Segments {
			var variant *string
			if seg.Variant != "" {
				v := string(seg.Variant)
				variant = &v
			}
			query := `INSERT INTO ` + s.tables.Segments + ` (id, text_id, content, type, variant, language)
				VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`
			if _, err := executor.Exec(txCtx, query, seg.ID, seg.TextID, seg.Content, string(seg.Type), variant, seg.Language); err != nil {
				return fmt.Errorf("insert segment %s: %w", seg.ID, err)
			}
		}

		links := 0
		for _, seg := range ds.Segments {
			for _, m := range seg.Mappings {
				for _, mappedID := range m.SegmentIDs {
					query := `INSERT INTO ` + s.tables.SegmentMappings + ` (segment_id, text_id, mapped_segment_id)
						VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
					if _, err := executor.Exec(txCtx, query, seg.ID, m.TextID, mappedID); err != nil {
						return fmt.Errorf("insert mapping %s -> %s: %w", seg.ID, mappedID, err)
					}
					links++
				}
			}
		}

		for _, img := range ds.Images {
			query := `INSERT INTO ` + s.tables.TextImages + ` (text_id, image_key)
				VALUES ($1, $2) ON CONFLICT (text_id) DO NOTHING`
			if _, err := executor.Exec(txCtx, query, img.TextID, img.ImageKey); err != nil {
				return fmt.Errorf("insert image of %s: %w", img.TextID, err)
			}
		}

		s.logger.Info("recitation data seeded",
			"collections", len(ds.Collections),
			"texts", len(ds.Texts),
			"segments", len(ds.Segments),
			"mappings", links,
		)
		return nil
	})
}
