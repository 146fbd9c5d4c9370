package recitation

//go:generate mockgen -source=cache.go -destination=../../../mocks/services/recitation/mock_cache.go -package=mock_recitation

import (
	"context"

	models "webuddhist/internal/domain/models/recitation"
)

// DetailsCache memoizes recitation details per (text ID, request shape).
// A miss is always safe to treat as "recompute"; implementations swallow
// backend errors and report them as misses.
type DetailsCache interface {
	// Get returns the cached response and true, or nil and false on a miss
	Get(ctx context.Context, textID string, req *models.RecitationDetailsRequest) (*models.RecitationDetailsResponse, bool)

	// Set stores a response. Concurrent writers for the same key: last write wins.
	Set(ctx context.Context, textID string, req *models.RecitationDetailsRequest, resp *models.RecitationDetailsResponse)
}

// DetailsCacheKey derives the cache key for a text and request shape
func DetailsCacheKey(prefix, textID string, req *models.RecitationDetailsRequest) string {
	return prefix + "recitation_details:" + textID + ":" + req.Fingerprint()
}
