package recitation

//go:generate mockgen -source=segment.go -destination=../../../mocks/repositories/recitation/mock_segment.go -package=mock_recitation

import (
	"context"

	models "webuddhist/internal/domain/models/recitation"
)

// SegmentRepository defines data access operations for segments and their mappings.
// Unknown IDs are omitted from results rather than reported as errors.
type SegmentRepository interface {
	// GetByID retrieves a single segment with its mappings
	GetByID(ctx context.Context, id string) (*models.Segment, error)

	// GetByIDs retrieves segments keyed by ID in one round trip
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Segment, error)

	// GetRelatedMapped retrieves the segments mapped to or from a parent segment
	GetRelatedMapped(ctx context.Context, parentID string) ([]models.Segment, error)

	// GetRelatedMappedBatch retrieves related segments for many parents in one round trip,
	// keyed by parent ID and ordered by (text_id, id) within each parent
	GetRelatedMappedBatch(ctx context.Context, parentIDs []string) (map[string][]models.Segment, error)
}
