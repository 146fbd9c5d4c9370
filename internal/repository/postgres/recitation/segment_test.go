package recitation

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webuddhist/internal/domain"
	models "webuddhist/internal/domain/models/recitation"
	"webuddhist/internal/repository/postgres"
)

func newUninitializedConfig() *postgres.RepositoryConfig {
	return &postgres.RepositoryConfig{
		Pool:   nil,
		Tables: postgres.NewTableNames("test_"),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestDecodeMappings(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []models.Mapping
		wantErr bool
	}{
		{
			name: "empty payload",
			data: "",
			want: []models.Mapping{},
		},
		{
			name: "empty array",
			data: "[]",
			want: []models.Mapping{},
		},
		{
			name: "grouped by text",
			data: `[{"text_id":"t1","segments":["a","b"]},{"text_id":"t2","segments":["c"]}]`,
			want: []models.Mapping{
				{TextID: "t1", SegmentIDs: []string{"a", "b"}},
				{TextID: "t2", SegmentIDs: []string{"c"}},
			},
		},
		{
			name:    "malformed",
			data:    `{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeMappings([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegmentRepository_EmptyInputSkipsStore(t *testing.T) {
	repo := NewSegmentRepository(newUninitializedConfig())

	segments, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, segments)

	related, err := repo.GetRelatedMappedBatch(context.Background(), []string{})
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestSegmentRepository_UninitializedPool(t *testing.T) {
	repo := NewSegmentRepository(newUninitializedConfig())
	ctx := context.Background()

	_, err := repo.GetByIDs(ctx, []string{"s1"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = repo.GetRelatedMappedBatch(ctx, []string{"s1"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = repo.GetRelatedMapped(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = repo.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestTextRepository_UninitializedPool(t *testing.T) {
	repo := NewTextRepository(newUninitializedConfig())
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "t1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = repo.GetContents(ctx, "t1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	keys, err := repo.GetImageKeys(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
