package recitation

import (
	"context"
	"log/slog"

	models "webuddhist/internal/domain/models/recitation"
)

// Aggregation is the result of walking a table of contents.
// Degraded is set when the segment store could not answer one of the
// bulk fetches; the segments are then built from whatever was available.
type Aggregation struct {
	Segments []models.RecitationSegment
	Degraded bool
}

// Aggregator builds recitation segments from a table of contents
// with at most two bulk store fetches.
type Aggregator struct {
	store  *SegmentStore
	logger *slog.Logger
}

func NewAggregator(store *SegmentStore, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		store:  store,
		logger: logger.With("component", "segment_aggregator"),
	}
}

// FlattenSegmentIDs lists the segment IDs of the first section of every
// entry, in traversal order and keeping duplicates. Later sections are
// not part of the recitation view.
func FlattenSegmentIDs(contents []models.TableOfContent) []string {
	ids := make([]string, 0)
	for _, toc := range contents {
		if len(toc.Sections) == 0 {
			continue
		}
		for _, ref := range toc.Sections[0].Segments {
			ids = append(ids, ref.SegmentID)
		}
	}
	return ids
}

// Aggregate resolves every referenced segment, gathers its related segments
// when a non-recitation axis needs them, and filters each requested axis.
// Output order follows the table of contents; unresolvable IDs are skipped.
// The only error is the context error of a fetch the caller abandoned.
func (a *Aggregator) Aggregate(ctx context.Context, contents []models.TableOfContent, req *models.RecitationDetailsRequest) (*Aggregation, error) {
	result := &Aggregation{Segments: make([]models.RecitationSegment, 0)}

	ids := FlattenSegmentIDs(contents)
	if len(ids) == 0 {
		return result, nil
	}

	batch := a.store.GetSegmentsDetailsByIDs(ctx, ids)
	switch batch.Status {
	case models.FetchCanceled:
		return nil, batch.Err
	case models.FetchUnavailable:
		result.Degraded = true
	}
	if len(batch.Segments) == 0 {
		level := slog.LevelDebug
		if result.Degraded {
			level = slog.LevelWarn
		}
		a.logger.Log(ctx, level, "no table-of-contents segment could be resolved",
			"segment_refs", len(ids),
			"status", batch.Status.String(),
		)
		return result, nil
	}

	related := map[string][]models.Segment{}
	if req.NeedsMappedSegments() {
		relatedBatch := a.store.GetRelatedMappedSegmentsBatch(ctx, uniqueIDs(ids))
		switch relatedBatch.Status {
		case models.FetchCanceled:
			return nil, relatedBatch.Err
		case models.FetchUnavailable:
			result.Degraded = true
		}
		related = relatedBatch.Related
	}

	axes := req.Axes()
	skipped := 0
	for _, id := range ids {
		seg, ok := batch.Segments[id]
		if !ok {
			skipped++
			continue
		}

		pool := make([]models.Segment, 0, 1+len(related[id]))
		pool = append(pool, seg)
		pool = append(pool, related[id]...)

		var out models.RecitationSegment
		for _, axis := range axes {
			if !axis.Requested() {
				continue
			}
			out.Set(axis.Variant, FilterVariants(axis.Variant, pool, axis.Languages))
		}
		result.Segments = append(result.Segments, out)
	}

	if skipped > 0 {
		a.logger.Debug("skipped dangling segment references", "skipped", skipped, "total", len(ids))
	}
	if result.Degraded {
		a.logger.Warn("aggregation degraded by unavailable segment store",
			"segment_refs", len(ids),
			"segments_built", len(result.Segments),
		)
	}

	return result, nil
}

// uniqueIDs drops repeated IDs, keeping first occurrence order
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
