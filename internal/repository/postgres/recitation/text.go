package recitation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"webuddhist/internal/domain"
	models "webuddhist/internal/domain/models/recitation"
	recitationRepo "webuddhist/internal/domain/repositories/recitation"
	"webuddhist/internal/repository/postgres"
)

// PostgresTextRepository implements the TextRepository interface
type PostgresTextRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewTextRepository creates a new text repository
func NewTextRepository(config *postgres.RepositoryConfig) recitationRepo.TextRepository {
	return &PostgresTextRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

const textColumns = `id, title, language, group_id, type, collection_id, published_date`

// GetByID retrieves a text by ID
func (r *PostgresTextRepository) GetByID(ctx context.Context, id string) (*models.Text, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, textColumns, r.tables.Texts)

	executor, err := postgres.GetExecutor(ctx, r.pool)
	if err != nil {
		return nil, err
	}

	var text models.Text
	var textType string
	err = executor.QueryRow(ctx, query, id).Scan(
		&text.ID,
		&text.Title,
		&text.Language,
		&text.GroupID,
		&textType,
		&text.CollectionID,
		&text.PublishedDate,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("text %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.WrapQueryError("get text", err)
	}
	text.Type = models.TextType(textType)

	return &text, nil
}

// ListByGroup lists all texts of a group, oldest first
func (r *PostgresTextRepository) ListByGroup(ctx context.Context, groupID string) ([]models.Text, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE group_id = $1
		ORDER BY published_date, id
	`, textColumns, r.tables.Texts)

	return r.listTexts(ctx, "list texts by group", query, groupID)
}

// ListRootTextsByCollection lists root texts of a collection in one language
func (r *PostgresTextRepository) ListRootTextsByCollection(ctx context.Context, collectionID, language string) ([]models.Text, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE collection_id = $1 AND type = $2 AND language = $3
		ORDER BY title, id
	`, textColumns, r.tables.Texts)

	return r.listTexts(ctx, "list root texts", query, collectionID, string(models.TextTypeRoot), language)
}

func (r *PostgresTextRepository) listTexts(ctx context.Context, op, query string, args ...any) ([]models.Text, error) {
	executor, err := postgres.GetExecutor(ctx, r.pool)
	if err != nil {
		return nil, err
	}

	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.WrapQueryError(op, err)
	}
	defer rows.Close()

	texts := make([]models.Text, 0)
	for rows.Next() {
		var text models.Text
		var textType string
		if err := rows.Scan(
			&text.ID,
			&text.Title,
			&text.Language,
			&text.GroupID,
			&textType,
			&text.CollectionID,
			&text.PublishedDate,
		); err != nil {
			return nil, fmt.Errorf("scan text: %w", err)
		}
		text.Type = models.TextType(textType)
		texts = append(texts, text)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.WrapQueryError(op, err)
	}

	return texts, nil
}

// GetContents lists the table-of-contents entries of a text in display order
func (r *PostgresTextRepository) GetContents(ctx context.Context, textID string) ([]models.TableOfContent, error) {
	query := fmt.Sprintf(`
		SELECT id, text_id, order_index, sections
		FROM %s
		WHERE text_id = $1
		ORDER BY order_index, id
	`, r.tables.TableOfContents)

	executor, err := postgres.GetExecutor(ctx, r.pool)
	if err != nil {
		return nil, err
	}

	rows, err := executor.Query(ctx, query, textID)
	if err != nil {
		return nil, postgres.WrapQueryError("get contents", err)
	}
	defer rows.Close()

	contents := make([]models.TableOfContent, 0)
	for rows.Next() {
		var toc models.TableOfContent
		var sectionsJSON []byte
		if err := rows.Scan(&toc.ID, &toc.TextID, &toc.Order, &sectionsJSON); err != nil {
			return nil, fmt.Errorf("scan table of contents: %w", err)
		}
		if err := json.Unmarshal(sectionsJSON, &toc.Sections); err != nil {
			return nil, fmt.Errorf("decode sections of %s: %w", toc.ID, err)
		}
		contents = append(contents, toc)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.WrapQueryError("get contents", err)
	}

	return contents, nil
}

// GetCollectionIDBySlug resolves a collection slug
func (r *PostgresTextRepository) GetCollectionIDBySlug(ctx context.Context, slug string) (string, error) {
	query := fmt.Sprintf(`SELECT id FROM %s WHERE slug = $1`, r.tables.Collections)

	executor, err := postgres.GetExecutor(ctx, r.pool)
	if err != nil {
		return "", err
	}

	var id string
	if err := executor.QueryRow(ctx, query, slug).Scan(&id); err != nil {
		if postgres.IsPgNoRowsError(err) {
			return "", fmt.Errorf("collection %s: %w", slug, domain.ErrNotFound)
		}
		return "", postgres.WrapQueryError("get collection", err)
	}

	return id, nil
}

// GetImageKeys returns image storage keys keyed by text ID
func (r *PostgresTextRepository) GetImageKeys(ctx context.Context, textIDs []string) (map[string]string, error) {
	keys := make(map[string]string, len(textIDs))
	if len(textIDs) == 0 {
		return keys, nil
	}

	query := fmt.Sprintf(`SELECT text_id, image_key FROM %s WHERE text_id = ANY($1)`, r.tables.TextImages)

	executor, err := postgres.GetExecutor(ctx, r.pool)
	if err != nil {
		return nil, err
	}

	rows, err := executor.Query(ctx, query, textIDs)
	if err != nil {
		return nil, postgres.WrapQueryError("get text images", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img models.TextImage
		if err := rows.Scan(&img.TextID, &img.ImageKey); err != nil {
			return nil, fmt.Errorf("scan text image: %w", err)
		}
		keys[img.TextID] = img.ImageKey
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.WrapQueryError("get text images", err)
	}

	return keys, nil
}
