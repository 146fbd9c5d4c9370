package recitation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"webuddhist/internal/domain"
	models "webuddhist/internal/domain/models/recitation"
	mock_recitation "webuddhist/internal/mocks/repositories/recitation"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAggregator(t *testing.T) (*Aggregator, *mock_recitation.MockSegmentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_recitation.NewMockSegmentRepository(ctrl)
	store := NewSegmentStore(repo, discardLogger())
	return NewAggregator(store, discardLogger()), repo
}

func toc(sections ...[]string) models.TableOfContent {
	entry := models.TableOfContent{ID: "toc"}
	for i, ids := range sections {
		section := models.Section{ID: fmt.Sprintf("section-%d", i), SectionNumber: i + 1}
		for j, id := range ids {
			section.Segments = append(section.Segments, models.SectionSegment{SegmentID: id, SegmentNumber: j + 1})
		}
		entry.Sections = append(entry.Sections, section)
	}
	return entry
}

func rootSegment(id string) models.Segment {
	return models.Segment{
		ID:       id,
		TextID:   "root-text",
		Content:  "content of " + id,
		Type:     models.SegmentTypeRoot,
		Variant:  models.VariantRecitation,
		Language: "bo",
	}
}

func variantSegment(id string, variant models.VariantType, lang string) models.Segment {
	return models.Segment{
		ID:       id,
		TextID:   "version-" + lang,
		Content:  "content of " + id,
		Type:     models.SegmentTypeVersion,
		Variant:  variant,
		Language: lang,
	}
}

func TestFlattenSegmentIDs(t *testing.T) {
	contents := []models.TableOfContent{
		toc([]string{"s1", "s2"}, []string{"ignored"}),
		{ID: "no-sections"},
		toc([]string{"s3", "s1"}),
	}

	assert.Equal(t, []string{"s1", "s2", "s3", "s1"}, FlattenSegmentIDs(contents))
}

func TestAggregate_EmptyTableOfContents(t *testing.T) {
	agg, _ := newTestAggregator(t)
	req := &models.RecitationDetailsRequest{Translations: []string{"en"}}

	result, err := agg.Aggregate(context.Background(), nil, req)
	require.NoError(t, err)
	require.NotNil(t, result.Segments)
	assert.Empty(t, result.Segments)
	assert.False(t, result.Degraded)

	result, err = agg.Aggregate(context.Background(), []models.TableOfContent{toc([]string{})}, req)
	require.NoError(t, err)
	assert.Empty(t, result.Segments)
}

func TestAggregate_TranslationsScenario(t *testing.T) {
	agg, repo := newTestAggregator(t)
	ctx := context.Background()

	repo.EXPECT().GetByIDs(gomock.Any(), []string{"S1", "S2"}).Return(map[string]models.Segment{
		"S1": rootSegment("S1"),
		"S2": rootSegment("S2"),
	}, nil).Times(1)
	repo.EXPECT().GetRelatedMappedBatch(gomock.Any(), []string{"S1", "S2"}).Return(map[string][]models.Segment{
		"S1": {
			variantSegment("T1", models.VariantTranslation, "en"),
			variantSegment("T2", models.VariantTranslation, "bo"),
		},
	}, nil).Times(1)

	req := &models.RecitationDetailsRequest{Translations: []string{"en"}}
	result, err := agg.Aggregate(ctx, []models.TableOfContent{toc([]string{"S1", "S2"})}, req)
	require.NoError(t, err)

	require.Len(t, result.Segments, 2)
	assert.Equal(t, map[string]models.SegmentProjection{
		"en": {ID: "T1", Content: "content of T1"},
	}, result.Segments[0].Translations)
	assert.Equal(t, map[string]models.SegmentProjection{}, result.Segments[1].Translations)

	// Axes not requested stay absent
	assert.Nil(t, result.Segments[0].Recitation)
	assert.Nil(t, result.Segments[0].Transliterations)
	assert.Nil(t, result.Segments[0].Adaptations)
	assert.False(t, result.Degraded)
}

func TestAggregate_SkipsDanglingReferencesPreservingOrder(t *testing.T) {
	agg, repo := newTestAggregator(t)

	repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]models.Segment{
		"a": rootSegment("a"),
		"c": rootSegment("c"),
	}, nil)

	req := &models.RecitationDetailsRequest{Recitation: []string{"bo"}}
	contents := []models.TableOfContent{
		toc([]string{"c", "missing"}),
		toc([]string{"a", "c"}),
	}

	result, err := agg.Aggregate(context.Background(), contents, req)
	require.NoError(t, err)

	require.Len(t, result.Segments, 3)
	ids := make([]string, 0, len(result.Segments))
	for _, seg := range result.Segments {
		ids = append(ids, seg.Recitation["bo"].ID)
	}
	assert.Equal(t, []string{"c", "a", "c"}, ids)
	assert.False(t, result.Degraded)
}

func TestAggregate_IgnoresSecondSection(t *testing.T) {
	agg, repo := newTestAggregator(t)

	repo.EXPECT().GetByIDs(gomock.Any(), []string{"first"}).Return(map[string]models.Segment{
		"first": rootSegment("first"),
	}, nil)

	req := &models.RecitationDetailsRequest{Recitation: []string{"bo"}}
	result, err := agg.Aggregate(context.Background(), []models.TableOfContent{
		toc([]string{"first"}, []string{"second"}),
	}, req)
	require.NoError(t, err)

	require.Len(t, result.Segments, 1)
	assert.Equal(t, "first", result.Segments[0].Recitation["bo"].ID)
}

func TestAggregate_RecitationOnlySkipsRelatedFetch(t *testing.T) {
	agg, repo := newTestAggregator(t)

	repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]models.Segment{
		"s1": rootSegment("s1"),
	}, nil).Times(1)
	// No GetRelatedMappedBatch expectation: gomock fails the test if it is called.

	req := &models.RecitationDetailsRequest{Recitation: []string{"bo"}, Translations: []string{}}
	result, err := agg.Aggregate(context.Background(), []models.TableOfContent{toc([]string{"s1"})}, req)
	require.NoError(t, err)

	require.Len(t, result.Segments, 1)
	assert.Equal(t, map[string]models.SegmentProjection{
		"bo": {ID: "s1", Content: "content of s1"},
	}, result.Segments[0].Recitation)
	assert.Equal(t, map[string]models.SegmentProjection{}, result.Segments[0].Translations)
}

func TestAggregate_AllAxes(t *testing.T) {
	agg, repo := newTestAggregator(t)

	repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]models.Segment{
		"s1": rootSegment("s1"),
	}, nil).Times(1)
	repo.EXPECT().GetRelatedMappedBatch(gomock.Any(), gomock.Any()).Return(map[string][]models.Segment{
		"s1": {
			variantSegment("tr-en", models.VariantTranslation, "en"),
			variantSegment("tl-en", models.VariantTransliteration, "en"),
			variantSegment("ad-en", models.VariantAdaptation, "en"),
			variantSegment("rc-zh", models.VariantRecitation, "zh"),
		},
	}, nil).Times(1)

	req := &models.RecitationDetailsRequest{
		Recitation:       []string{"bo", "zh"},
		Translations:     []string{"en"},
		Transliterations: []string{"en"},
		Adaptations:      []string{"en"},
	}
	result, err := agg.Aggregate(context.Background(), []models.TableOfContent{toc([]string{"s1"})}, req)
	require.NoError(t, err)

	require.Len(t, result.Segments, 1)
	seg := result.Segments[0]
	assert.Equal(t, "s1", seg.Recitation["bo"].ID)
	assert.Equal(t, "rc-zh", seg.Recitation["zh"].ID)
	assert.Equal(t, "tr-en", seg.Translations["en"].ID)
	assert.Equal(t, "tl-en", seg.Transliterations["en"].ID)
	assert.Equal(t, "ad-en", seg.Adaptations["en"].ID)
}

func TestAggregate_StoreUnavailableDegrades(t *testing.T) {
	agg, repo := newTestAggregator(t)

	repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("get segments: %w", domain.ErrStoreUnavailable))
	// Nothing resolved, so related segments are never fetched

	req := &models.RecitationDetailsRequest{Translations: []string{"en"}}
	result, err := agg.Aggregate(context.Background(), []models.TableOfContent{toc([]string{"s1"})}, req)
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Empty(t, result.Segments)
}

func TestAggregate_NothingResolved(t *testing.T) {
	agg, repo := newTestAggregator(t)

	repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]models.Segment{}, nil)

	req := &models.RecitationDetailsRequest{Translations: []string{"en"}}
	result, err := agg.Aggregate(context.Background(), []models.TableOfContent{toc([]string{"gone"})}, req)
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.Empty(t, result.Segments)
}

func TestAggregate_UnresolvedLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantWarn bool
	}{
		{name: "nothing in store", err: nil, wantWarn: false},
		{name: "store down", err: domain.ErrStoreUnavailable, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock_recitation.NewMockSegmentRepository(gomock.NewController(t))
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
			agg := NewAggregator(NewSegmentStore(repo, discardLogger()), logger)

			if tt.err != nil {
				repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			} else {
				repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]models.Segment{}, nil)
			}

			req := &models.RecitationDetailsRequest{Recitation: []string{"bo"}}
			_, err := agg.Aggregate(context.Background(), []models.TableOfContent{toc([]string{"gone"})}, req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWarn, strings.Contains(logs.String(), "no table-of-contents segment could be resolved"))
		})
	}
}

func TestAggregate_RelatedUnavailableStillBuildsSegments(t *testing.T) {
	agg, repo := newTestAggregator(t)

	repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]models.Segment{
		"s1": rootSegment("s1"),
	}, nil)
	repo.EXPECT().GetRelatedMappedBatch(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("connection reset"))

	req := &models.RecitationDetailsRequest{Recitation: []string{"bo"}, Translations: []string{"en"}}
	result, err := agg.Aggregate(context.Background(), []models.TableOfContent{toc([]string{"s1"})}, req)
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	require.Len(t, result.Segments, 1)
	assert.Equal(t, "s1", result.Segments[0].Recitation["bo"].ID)
	assert.Empty(t, result.Segments[0].Translations)
}

func TestAggregate_CanceledFetchReturnsContextError(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *mock_recitation.MockSegmentRepository)
	}{
		{
			name: "segment fetch",
			setup: func(repo *mock_recitation.MockSegmentRepository) {
				repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("get segments: %w", context.Canceled))
			},
		},
		{
			name: "related fetch",
			setup: func(repo *mock_recitation.MockSegmentRepository) {
				repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]models.Segment{
					"s1": rootSegment("s1"),
				}, nil)
				repo.EXPECT().GetRelatedMappedBatch(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("get related segments: %w", context.Canceled))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, repo := newTestAggregator(t)
			tt.setup(repo)

			req := &models.RecitationDetailsRequest{Translations: []string{"en"}}
			result, err := agg.Aggregate(context.Background(), []models.TableOfContent{toc([]string{"s1"})}, req)
			assert.ErrorIs(t, err, context.Canceled)
			assert.Nil(t, result)
		})
	}
}

func TestAggregate_RelatedFetchSkipsRepeatedParents(t *testing.T) {
	agg, repo := newTestAggregator(t)

	repo.EXPECT().GetByIDs(gomock.Any(), []string{"s1", "s2", "s1"}).Return(map[string]models.Segment{
		"s1": rootSegment("s1"),
		"s2": rootSegment("s2"),
	}, nil)
	repo.EXPECT().GetRelatedMappedBatch(gomock.Any(), []string{"s1", "s2"}).Return(map[string][]models.Segment{
		"s1": {variantSegment("t1", models.VariantTranslation, "en")},
	}, nil)

	req := &models.RecitationDetailsRequest{Translations: []string{"en"}}
	result, err := agg.Aggregate(context.Background(), []models.TableOfContent{toc([]string{"s1", "s2", "s1"})}, req)
	require.NoError(t, err)

	require.Len(t, result.Segments, 3)
	assert.Equal(t, "t1", result.Segments[0].Translations["en"].ID)
	assert.Empty(t, result.Segments[1].Translations)
	assert.Equal(t, "t1", result.Segments[2].Translations["en"].ID)
}

func TestAggregate_Deterministic(t *testing.T) {
	agg, repo := newTestAggregator(t)

	segments := map[string]models.Segment{"s1": rootSegment("s1"), "s2": rootSegment("s2")}
	related := map[string][]models.Segment{
		"s1": {
			variantSegment("t1", models.VariantTranslation, "en"),
			variantSegment("t1b", models.VariantTranslation, "en"),
		},
		"s2": {variantSegment("t2", models.VariantTranslation, "fr")},
	}
	repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(segments, nil).Times(2)
	repo.EXPECT().GetRelatedMappedBatch(gomock.Any(), gomock.Any()).Return(related, nil).Times(2)

	req := &models.RecitationDetailsRequest{Translations: []string{"en", "fr"}}
	contents := []models.TableOfContent{toc([]string{"s1", "s2"})}

	first, err := agg.Aggregate(context.Background(), contents, req)
	require.NoError(t, err)
	second, err := agg.Aggregate(context.Background(), contents, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "t1", first.Segments[0].Translations["en"].ID)
}
