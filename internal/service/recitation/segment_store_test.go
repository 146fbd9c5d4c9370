package recitation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"webuddhist/internal/domain"
	models "webuddhist/internal/domain/models/recitation"
	mock_recitation "webuddhist/internal/mocks/repositories/recitation"
)

func newTestStore(t *testing.T) (*SegmentStore, *mock_recitation.MockSegmentRepository) {
	t.Helper()
	repo := mock_recitation.NewMockSegmentRepository(gomock.NewController(t))
	return NewSegmentStore(repo, discardLogger()), repo
}

func TestSegmentStore_GetSegmentsDetailsByIDs(t *testing.T) {
	tests := []struct {
		name       string
		ids        []string
		setup      func(repo *mock_recitation.MockSegmentRepository)
		wantStatus models.FetchStatus
		wantLen    int
	}{
		{
			name:       "no ids skips the store",
			ids:        nil,
			setup:      func(*mock_recitation.MockSegmentRepository) {},
			wantStatus: models.FetchEmpty,
		},
		{
			name: "found",
			ids:  []string{"s1", "s2"},
			setup: func(repo *mock_recitation.MockSegmentRepository) {
				repo.EXPECT().GetByIDs(gomock.Any(), []string{"s1", "s2"}).Return(map[string]models.Segment{
					"s1": rootSegment("s1"),
					"s2": rootSegment("s2"),
				}, nil)
			},
			wantStatus: models.FetchOK,
			wantLen:    2,
		},
		{
			name: "nothing matched",
			ids:  []string{"gone"},
			setup: func(repo *mock_recitation.MockSegmentRepository) {
				repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]models.Segment{}, nil)
			},
			wantStatus: models.FetchEmpty,
		},
		{
			name: "store down",
			ids:  []string{"s1"},
			setup: func(repo *mock_recitation.MockSegmentRepository) {
				repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("get segments: %w", domain.ErrStoreUnavailable))
			},
			wantStatus: models.FetchUnavailable,
		},
		{
			name: "caller canceled",
			ids:  []string{"s1"},
			setup: func(repo *mock_recitation.MockSegmentRepository) {
				repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("get segments: %w", context.Canceled))
			},
			wantStatus: models.FetchCanceled,
		},
		{
			name: "caller deadline exceeded",
			ids:  []string{"s1"},
			setup: func(repo *mock_recitation.MockSegmentRepository) {
				repo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)
			},
			wantStatus: models.FetchCanceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := newTestStore(t)
			tt.setup(repo)

			batch := store.GetSegmentsDetailsByIDs(context.Background(), tt.ids)
			assert.Equal(t, tt.wantStatus, batch.Status)
			if tt.wantStatus == models.FetchCanceled {
				assert.Error(t, batch.Err)
			} else {
				assert.NoError(t, batch.Err)
			}
			require.NotNil(t, batch.Segments)
			assert.Len(t, batch.Segments, tt.wantLen)
		})
	}
}

func TestSegmentStore_GetRelatedMappedSegmentsBatch(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	repo.EXPECT().GetRelatedMappedBatch(gomock.Any(), []string{"s1"}).Return(map[string][]models.Segment{
		"s1": {variantSegment("t1", models.VariantTranslation, "en")},
	}, nil)
	batch := store.GetRelatedMappedSegmentsBatch(ctx, []string{"s1"})
	assert.Equal(t, models.FetchOK, batch.Status)
	assert.Len(t, batch.Related["s1"], 1)

	repo.EXPECT().GetRelatedMappedBatch(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	batch = store.GetRelatedMappedSegmentsBatch(ctx, []string{"s1"})
	assert.Equal(t, models.FetchUnavailable, batch.Status)
	assert.NotNil(t, batch.Related)
	assert.Empty(t, batch.Related)

	repo.EXPECT().GetRelatedMappedBatch(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)
	batch = store.GetRelatedMappedSegmentsBatch(ctx, []string{"s1"})
	assert.Equal(t, models.FetchCanceled, batch.Status)
	assert.ErrorIs(t, batch.Err, context.Canceled)

	batch = store.GetRelatedMappedSegmentsBatch(ctx, []string{})
	assert.Equal(t, models.FetchEmpty, batch.Status)
}

func TestSegmentStore_GetSegmentByID(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	seg := rootSegment("s1")
	repo.EXPECT().GetByID(gomock.Any(), "s1").Return(&seg, nil)
	got, status := store.GetSegmentByID(ctx, "s1")
	assert.Equal(t, models.FetchOK, status)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.ID)

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, fmt.Errorf("segment missing: %w", domain.ErrNotFound))
	got, status = store.GetSegmentByID(ctx, "missing")
	assert.Equal(t, models.FetchEmpty, status)
	assert.Nil(t, got)

	repo.EXPECT().GetByID(gomock.Any(), "s2").Return(nil, domain.ErrStoreUnavailable)
	_, status = store.GetSegmentByID(ctx, "s2")
	assert.Equal(t, models.FetchUnavailable, status)

	repo.EXPECT().GetByID(gomock.Any(), "s3").Return(nil, context.Canceled)
	_, status = store.GetSegmentByID(ctx, "s3")
	assert.Equal(t, models.FetchCanceled, status)
}

func TestSegmentStore_GetRelatedMappedSegments(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	repo.EXPECT().GetRelatedMapped(gomock.Any(), "s1").Return([]models.Segment{}, nil)
	related, status := store.GetRelatedMappedSegments(ctx, "s1")
	assert.Equal(t, models.FetchEmpty, status)
	assert.Empty(t, related)

	repo.EXPECT().GetRelatedMapped(gomock.Any(), "s1").Return(nil, domain.ErrStoreUnavailable)
	related, status = store.GetRelatedMappedSegments(ctx, "s1")
	assert.Equal(t, models.FetchUnavailable, status)
	assert.NotNil(t, related)

	repo.EXPECT().GetRelatedMapped(gomock.Any(), "s1").Return(nil, context.DeadlineExceeded)
	_, status = store.GetRelatedMappedSegments(ctx, "s1")
	assert.Equal(t, models.FetchCanceled, status)
}
