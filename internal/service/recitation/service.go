package recitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/sync/singleflight"

	"webuddhist/internal/domain"
	models "webuddhist/internal/domain/models/recitation"
	recitationRepo "webuddhist/internal/domain/repositories/recitation"
	recitationSvc "webuddhist/internal/domain/services/recitation"
	"webuddhist/internal/languages"
)

// ServiceConfig holds the recitation settings taken from config.Config
type ServiceConfig struct {
	CollectionSlug  string
	DefaultLanguage string
	ImageBaseURL    string
}

// recitationService implements the RecitationService interface
type recitationService struct {
	textRepo   recitationRepo.TextRepository
	aggregator *Aggregator
	cache      recitationSvc.DetailsCache
	languages  *languages.Registry
	cfg        ServiceConfig
	inflight   singleflight.Group
	logger     *slog.Logger
}

// NewRecitationService creates a new recitation service
func NewRecitationService(
	textRepo recitationRepo.TextRepository,
	aggregator *Aggregator,
	cache recitationSvc.DetailsCache,
	languageRegistry *languages.Registry,
	cfg ServiceConfig,
	logger *slog.Logger,
) recitationSvc.RecitationService {
	return &recitationService{
		textRepo:   textRepo,
		aggregator: aggregator,
		cache:      cache,
		languages:  languageRegistry,
		cfg:        cfg,
		logger:     logger,
	}
}

// ListRecitations lists the root texts of the recitation collection
func (s *recitationService) ListRecitations(ctx context.Context, search, language string) (*models.RecitationsResponse, error) {
	search = strings.TrimSpace(search)
	if language == "" {
		language = s.cfg.DefaultLanguage
	}
	if err := s.validateListRequest(search, language); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	collectionID, err := s.textRepo.GetCollectionIDBySlug(ctx, s.cfg.CollectionSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Message: domain.CollectionNotFoundMessage}
		}
		return nil, err
	}

	texts, err := s.textRepo.ListRootTextsByCollection(ctx, collectionID, language)
	if err != nil {
		return nil, err
	}

	matched := FilterByTitle(texts, search)

	ids := make([]string, 0, len(matched))
	for _, text := range matched {
		ids = append(ids, text.ID)
	}

	imageKeys, err := s.textRepo.GetImageKeys(ctx, ids)
	if err != nil {
		// Images are decorative; list without them
		s.logger.Warn("failed to load recitation images", "error", err)
		imageKeys = map[string]string{}
	}

	recitations := make([]models.RecitationDTO, 0, len(matched))
	for _, text := range matched {
		dto := models.RecitationDTO{TextID: text.ID, Title: text.Title}
		if key, ok := imageKeys[text.ID]; ok && key != "" {
			imageURL := s.imageURL(key)
			dto.ImageURL = &imageURL
		}
		recitations = append(recitations, dto)
	}

	s.logger.Info("recitations listed",
		"collection_id", collectionID,
		"language", language,
		"search", search,
		"count", len(recitations),
	)

	return &models.RecitationsResponse{Recitations: recitations}, nil
}

// GetRecitationDetails returns the per-segment variant mappings of a text,
// served from the details cache when the same request was answered before.
func (s *recitationService) GetRecitationDetails(ctx context.Context, textID string, req *models.RecitationDetailsRequest) (*models.RecitationDetailsResponse, error) {
	if req == nil {
		req = &models.RecitationDetailsRequest{}
	}
	normalized := *req
	req = &normalized
	if req.Language == "" {
		req.Language = s.cfg.DefaultLanguage
	}
	if err := s.validateDetailsRequest(textID, req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	text, err := s.textRepo.GetByID(ctx, textID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Message: domain.TextNotFoundMessage}
		}
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx, textID, req); ok {
		s.logger.Debug("recitation details cache hit", "text_id", textID)
		return cached, nil
	}

	// Identical concurrent misses share one aggregation. The build outlives
	// the caller that started it; each caller stops waiting on its own context.
	key := recitationSvc.DetailsCacheKey("", textID, req)
	buildCtx := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		return s.buildDetails(buildCtx, text, req)
	})

	select {
	case <-ctx.Done():
		s.logger.Debug("recitation details request abandoned", "text_id", textID, "error", ctx.Err())
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.Debug("recitation details shared with in-flight request", "text_id", textID)
		}
		return res.Val.(*models.RecitationDetailsResponse), nil
	}
}

func (s *recitationService) buildDetails(ctx context.Context, text *models.Text, req *models.RecitationDetailsRequest) (*models.RecitationDetailsResponse, error) {
	groupTexts, err := s.textRepo.ListByGroup(ctx, text.GroupID)
	if err != nil {
		return nil, err
	}

	root := SelectRootText(groupTexts, req.Language)
	if root == nil {
		return nil, &domain.NotFoundError{Message: domain.TextNotFoundMessage}
	}

	contents, err := s.textRepo.GetContents(ctx, root.ID)
	if err != nil {
		return nil, err
	}

	agg, err := s.aggregator.Aggregate(ctx, contents, req)
	if err != nil {
		return nil, err
	}

	resp := &models.RecitationDetailsResponse{
		TextID:   text.ID,
		Title:    text.Title,
		Segments: agg.Segments,
	}

	if agg.Degraded {
		s.logger.Warn("recitation details degraded, not cached",
			"text_id", text.ID,
			"root_text_id", root.ID,
		)
	} else {
		s.cache.Set(ctx, text.ID, req, resp)
	}

	s.logger.Info("recitation details built",
		"text_id", text.ID,
		"root_text_id", root.ID,
		"toc_entries", len(contents),
		"segments", len(resp.Segments),
		"degraded", agg.Degraded,
	)

	return resp, nil
}

// SelectRootText picks the root text of a group, preferring one in language.
// Returns nil when the group has no root text.
func SelectRootText(texts []models.Text, language string) *models.Text {
	var fallback *models.Text
	for i := range texts {
		if texts[i].Type != models.TextTypeRoot {
			continue
		}
		if texts[i].Language == language {
			return &texts[i]
		}
		if fallback == nil {
			fallback = &texts[i]
		}
	}
	return fallback
}

// FilterByTitle keeps texts whose title contains search, case-insensitively.
// An empty search keeps everything.
func FilterByTitle(texts []models.Text, search string) []models.Text {
	if search == "" {
		return texts
	}
	needle := strings.ToLower(search)
	filtered := make([]models.Text, 0, len(texts))
	for _, text := range texts {
		if strings.Contains(strings.ToLower(text.Title), needle) {
			filtered = append(filtered, text)
		}
	}
	return filtered
}

func (s *recitationService) imageURL(key string) string {
	if s.cfg.ImageBaseURL == "" || strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	joined, err := url.JoinPath(s.cfg.ImageBaseURL, key)
	if err != nil {
		return key
	}
	return joined
}
