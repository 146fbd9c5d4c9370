package recitation

//go:generate mockgen -source=recitation.go -destination=../../../mocks/services/recitation/mock_recitation.go -package=mock_recitation

import (
	"context"

	models "webuddhist/internal/domain/models/recitation"
)

// RecitationService defines the read operations behind the recitation views
type RecitationService interface {
	// ListRecitations lists the root texts of the recitation collection,
	// optionally filtered by a case-insensitive title search
	ListRecitations(ctx context.Context, search, language string) (*models.RecitationsResponse, error)

	// GetRecitationDetails assembles the per-segment variant mappings of a text.
	// Returns domain.ErrNotFound if the text or its root text does not exist.
	GetRecitationDetails(ctx context.Context, textID string, req *models.RecitationDetailsRequest) (*models.RecitationDetailsResponse, error)
}
