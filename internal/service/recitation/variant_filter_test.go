package recitation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	models "webuddhist/internal/domain/models/recitation"
)

func TestFilterVariants(t *testing.T) {
	pool := []models.Segment{
		{ID: "A", Content: "a", Variant: models.VariantTranslation, Language: "en"},
		{ID: "B", Content: "b", Variant: models.VariantTranslation, Language: "bo"},
		{ID: "C", Content: "c", Variant: models.VariantAdaptation, Language: "en"},
	}

	tests := []struct {
		name      string
		variant   models.VariantType
		pool      []models.Segment
		languages []string
		want      map[string]models.SegmentProjection
	}{
		{
			name:      "matches type and language, excludes other types",
			variant:   models.VariantTranslation,
			pool:      pool,
			languages: []string{"en", "bo"},
			want: map[string]models.SegmentProjection{
				"en": {ID: "A", Content: "a"},
				"bo": {ID: "B", Content: "b"},
			},
		},
		{
			name:      "only requested languages",
			variant:   models.VariantTranslation,
			pool:      pool,
			languages: []string{"bo"},
			want: map[string]models.SegmentProjection{
				"bo": {ID: "B", Content: "b"},
			},
		},
		{
			name:      "adaptation axis sees only adaptations",
			variant:   models.VariantAdaptation,
			pool:      pool,
			languages: []string{"en", "bo"},
			want: map[string]models.SegmentProjection{
				"en": {ID: "C", Content: "c"},
			},
		},
		{
			name:      "missing language is omitted, not a placeholder",
			variant:   models.VariantTranslation,
			pool:      pool,
			languages: []string{"zh"},
			want:      map[string]models.SegmentProjection{},
		},
		{
			name:      "empty language list",
			variant:   models.VariantTranslation,
			pool:      pool,
			languages: []string{},
			want:      map[string]models.SegmentProjection{},
		},
		{
			name:      "nil language list",
			variant:   models.VariantTranslation,
			pool:      pool,
			languages: nil,
			want:      map[string]models.SegmentProjection{},
		},
		{
			name:    "first match in pool order wins",
			variant: models.VariantTranslation,
			pool: []models.Segment{
				{ID: "first", Content: "1", Variant: models.VariantTranslation, Language: "en"},
				{ID: "second", Content: "2", Variant: models.VariantTranslation, Language: "en"},
			},
			languages: []string{"en"},
			want: map[string]models.SegmentProjection{
				"en": {ID: "first", Content: "1"},
			},
		},
		{
			name:    "untagged segments never match",
			variant: models.VariantRecitation,
			pool: []models.Segment{
				{ID: "root", Content: "r", Type: models.SegmentTypeRoot, Language: "bo"},
			},
			languages: []string{"bo"},
			want:      map[string]models.SegmentProjection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVariants(tt.variant, tt.pool, tt.languages)
			assert.Equal(t, tt.want, got)
		})
	}
}
