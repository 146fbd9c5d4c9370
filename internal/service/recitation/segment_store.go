package recitation

import (
	"context"
	"errors"
	"log/slog"

	"webuddhist/internal/domain"
	models "webuddhist/internal/domain/models/recitation"
	recitationRepo "webuddhist/internal/domain/repositories/recitation"
)

// SegmentStore adapts a SegmentRepository for aggregation. It never returns
// errors: store failures degrade to empty results tagged FetchUnavailable,
// so callers can tell "no data" from "store down" without special-casing.
// A fetch cut short by the caller's context is FetchCanceled, not a store failure.
type SegmentStore struct {
	repo   recitationRepo.SegmentRepository
	logger *slog.Logger
}

func NewSegmentStore(repo recitationRepo.SegmentRepository, logger *slog.Logger) *SegmentStore {
	return &SegmentStore{
		repo:   repo,
		logger: logger.With("component", "segment_store"),
	}
}

// GetSegmentsDetailsByIDs resolves segments in one batch call
func (s *SegmentStore) GetSegmentsDetailsByIDs(ctx context.Context, ids []string) models.SegmentBatch {
	if len(ids) == 0 {
		return models.SegmentBatch{Segments: map[string]models.Segment{}, Status: models.FetchEmpty}
	}

	segments, err := s.repo.GetByIDs(ctx, ids)
	if isContextError(err) {
		return models.SegmentBatch{Segments: map[string]models.Segment{}, Status: models.FetchCanceled, Err: err}
	}
	if err != nil {
		s.logUnavailable("get segments", len(ids), err)
		return models.SegmentBatch{Segments: map[string]models.Segment{}, Status: models.FetchUnavailable}
	}
	if len(segments) == 0 {
		return models.SegmentBatch{Segments: map[string]models.Segment{}, Status: models.FetchEmpty}
	}

	return models.SegmentBatch{Segments: segments, Status: models.FetchOK}
}

// GetRelatedMappedSegmentsBatch fetches related segments for many parents in one batch call
func (s *SegmentStore) GetRelatedMappedSegmentsBatch(ctx context.Context, parentIDs []string) models.RelatedSegmentBatch {
	if len(parentIDs) == 0 {
		return models.RelatedSegmentBatch{Related: map[string][]models.Segment{}, Status: models.FetchEmpty}
	}

	related, err := s.repo.GetRelatedMappedBatch(ctx, parentIDs)
	if isContextError(err) {
		return models.RelatedSegmentBatch{Related: map[string][]models.Segment{}, Status: models.FetchCanceled, Err: err}
	}
	if err != nil {
		s.logUnavailable("get related segments", len(parentIDs), err)
		return models.RelatedSegmentBatch{Related: map[string][]models.Segment{}, Status: models.FetchUnavailable}
	}
	if len(related) == 0 {
		return models.RelatedSegmentBatch{Related: map[string][]models.Segment{}, Status: models.FetchEmpty}
	}

	return models.RelatedSegmentBatch{Related: related, Status: models.FetchOK}
}

// GetSegmentByID resolves a single segment. A missing segment is FetchEmpty.
func (s *SegmentStore) GetSegmentByID(ctx context.Context, id string) (*models.Segment, models.FetchStatus) {
	seg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, models.FetchEmpty
		}
		if isContextError(err) {
			return nil, models.FetchCanceled
		}
		s.logUnavailable("get segment", 1, err)
		return nil, models.FetchUnavailable
	}
	return seg, models.FetchOK
}

// GetRelatedMappedSegments fetches the related segments of one parent
func (s *SegmentStore) GetRelatedMappedSegments(ctx context.Context, parentID string) ([]models.Segment, models.FetchStatus) {
	related, err := s.repo.GetRelatedMapped(ctx, parentID)
	if isContextError(err) {
		return []models.Segment{}, models.FetchCanceled
	}
	if err != nil {
		s.logUnavailable("get related segments", 1, err)
		return []models.Segment{}, models.FetchUnavailable
	}
	if len(related) == 0 {
		return []models.Segment{}, models.FetchEmpty
	}
	return related, models.FetchOK
}

func (s *SegmentStore) logUnavailable(op string, count int, err error) {
	s.logger.Warn("segment store unavailable, degrading to empty result",
		"op", op,
		"ids", count,
		"store_unavailable", errors.Is(err, domain.ErrStoreUnavailable),
		"error", err,
	)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
