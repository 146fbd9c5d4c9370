package recitation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"webuddhist/internal/config"
	"webuddhist/internal/domain"
	models "webuddhist/internal/domain/models/recitation"
	recitationRepo "webuddhist/internal/domain/repositories/recitation"
	"webuddhist/internal/repository/postgres"
)

// PostgresSegmentRepository implements the SegmentRepository interface
type PostgresSegmentRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewSegmentRepository creates a new segment repository
func NewSegmentRepository(config *postgres.RepositoryConfig) recitationRepo.SegmentRepository {
	return &PostgresSegmentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// segmentColumns selects a segment row plus its mappings aggregated per
// target text as a JSON array. Expects the segment table aliased as s.
func (r *PostgresSegmentRepository) segmentColumns() string {
	return fmt.Sprintf(`
		s.id, s.text_id, s.content, s.type, COALESCE(s.variant, ''), s.language,
		COALESCE((
			SELECT json_agg(json_build_object('text_id', g.text_id, 'segments', g.ids) ORDER BY g.text_id)
			FROM (
				SELECT m.text_id, array_agg(m.mapped_segment_id ORDER BY m.mapped_segment_id) AS ids
				FROM %s m
				WHERE m.segment_id = s.id
				GROUP BY m.text_id
			) g
		), '[]'::json)`, r.tables.SegmentMappings)
}

// GetByID retrieves a single segment with its mappings
func (r *PostgresSegmentRepository) GetByID(ctx context.Context, id string) (*models.Segment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s s WHERE s.id = $1`, r.segmentColumns(), r.tables.Segments)

	executor, err := postgres.GetExecutor(ctx, r.pool)
	if err != nil {
		return nil, err
	}

	seg, err := scanSegment(executor.QueryRow(ctx, query, id))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("segment %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.WrapQueryError("get segment", err)
	}

	return &seg, nil
}

// GetByIDs retrieves segments keyed by ID. Unknown IDs are omitted.
func (r *PostgresSegmentRepository) GetByIDs(ctx context.Context, ids []string) (map[string]models.Segment, error) {
	result := make(map[string]models.Segment, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s s WHERE s.id = ANY($1)`, r.segmentColumns(), r.tables.Segments)

	executor, err := postgres.GetExecutor(ctx, r.pool)
	if err != nil {
		return nil, err
	}

	for _, chunk := range postgres.ChunkIDs(ids, config.MaxBatchIDs) {
		rows, err := executor.Query(ctx, query, chunk)
		if err != nil {
			return nil, postgres.WrapQueryError("get segments", err)
		}

		for rows.Next() {
			seg, err := scanSegment(rows)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan segment: %w", err)
			}
			result[seg.ID] = seg
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, postgres.WrapQueryError("iterate segments", err)
		}
	}

	r.logger.Debug("segments fetched", "requested", len(ids), "found", len(result))

	return result, nil
}

// relatedQuery selects (parent_id, segment...) for every segment linked to a
// parent in either direction of the mapping relation.
func (r *PostgresSegmentRepository) relatedQuery() string {
	return fmt.Sprintf(`
		WITH links AS (
			SELECT m.segment_id AS parent_id, m.mapped_segment_id AS related_id
			FROM %[1]s m
			WHERE m.segment_id = ANY($1)
			UNION
			SELECT m.mapped_segment_id AS parent_id, m.segment_id AS related_id
			FROM %[1]s m
			WHERE m.mapped_segment_id = ANY($1)
		)
		SELECT l.parent_id, %[2]s
		FROM links l
		JOIN %[3]s s ON s.id = l.related_id
		WHERE s.id <> l.parent_id
		ORDER BY l.parent_id, s.text_id, s.id
	`, r.tables.SegmentMappings, r.segmentColumns(), r.tables.Segments)
}

// GetRelatedMapped retrieves the segments mapped to or from a parent segment
func (r *PostgresSegmentRepository) GetRelatedMapped(ctx context.Context, parentID string) ([]models.Segment, error) {
	related, err := r.GetRelatedMappedBatch(ctx, []string{parentID})
	if err != nil {
		return nil, err
	}
	segments := related[parentID]
	if segments == nil {
		segments = []models.Segment{}
	}
	return segments, nil
}

// GetRelatedMappedBatch retrieves related segments for many parents, keyed by
// parent ID and ordered by (text_id, id). Parents without relations are omitted.
func (r *PostgresSegmentRepository) GetRelatedMappedBatch(ctx context.Context, parentIDs []string) (map[string][]models.Segment, error) {
	result := make(map[string][]models.Segment)
	if len(parentIDs) == 0 {
		return result, nil
	}

	executor, err := postgres.GetExecutor(ctx, r.pool)
	if err != nil {
		return nil, err
	}

	query := r.relatedQuery()
	total := 0
	for _, chunk := range postgres.ChunkIDs(parentIDs, config.MaxBatchIDs) {
		rows, err := executor.Query(ctx, query, chunk)
		if err != nil {
			return nil, postgres.WrapQueryError("get related segments", err)
		}

		for rows.Next() {
			var parentID string
			seg, err := scanSegment(rows, &parentID)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan related segment: %w", err)
			}
			result[parentID] = append(result[parentID], seg)
			total++
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, postgres.WrapQueryError("iterate related segments", err)
		}
	}

	r.logger.Debug("related segments fetched",
		"parents", len(parentIDs),
		"parents_with_relations", len(result),
		"related", total,
	)

	return result, nil
}

// scanSegment scans the segmentColumns, preceded by any extra destinations
func scanSegment(row pgx.Row, leading ...any) (models.Segment, error) {
	var seg models.Segment
	var segType, variant string
	var mappingJSON []byte

	dest := append(leading,
		&seg.ID,
		&seg.TextID,
		&seg.Content,
		&segType,
		&variant,
		&seg.Language,
		&mappingJSON,
	)
	if err := row.Scan(dest...); err != nil {
		return models.Segment{}, err
	}

	seg.Type = models.SegmentType(segType)
	seg.Variant = models.VariantType(variant)

	mappings, err := decodeMappings(mappingJSON)
	if err != nil {
		return models.Segment{}, err
	}
	seg.Mappings = mappings

	return seg, nil
}

func decodeMappings(data []byte) ([]models.Mapping, error) {
	mappings := []models.Mapping{}
	if len(data) == 0 {
		return mappings, nil
	}
	if err := json.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("decode mappings: %w", err)
	}
	return mappings, nil
}
