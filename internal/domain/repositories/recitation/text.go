package recitation

//go:generate mockgen -source=text.go -destination=../../../mocks/repositories/recitation/mock_text.go -package=mock_recitation

import (
	"context"

	models "webuddhist/internal/domain/models/recitation"
)

// TextRepository defines read access to texts, their groups and tables of contents
type TextRepository interface {
	// GetByID retrieves a text. Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*models.Text, error)

	// ListByGroup lists all texts (root and versions) sharing a group
	ListByGroup(ctx context.Context, groupID string) ([]models.Text, error)

	// GetContents lists the table-of-contents entries of a text in display order
	GetContents(ctx context.Context, textID string) ([]models.TableOfContent, error)

	// GetCollectionIDBySlug resolves a collection slug. Returns domain.ErrNotFound if unknown.
	GetCollectionIDBySlug(ctx context.Context, slug string) (string, error)

	// ListRootTextsByCollection lists root texts of a collection in one language
	ListRootTextsByCollection(ctx context.Context, collectionID, language string) ([]models.Text, error)

	// GetImageKeys returns image storage keys keyed by text ID
	GetImageKeys(ctx context.Context, textIDs []string) (map[string]string, error)
}
