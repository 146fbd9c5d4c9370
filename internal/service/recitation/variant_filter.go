package recitation

import (
	models "webuddhist/internal/domain/models/recitation"
)

// FilterVariants maps each requested language to the first segment in pool
// that serves variant in that language. Pool order decides ties, so a
// deterministic pool gives a deterministic result. Segments of any other
// variant are never matched. An empty language list returns an empty map
// without scanning.
func FilterVariants(variant models.VariantType, pool []models.Segment, languages []string) map[string]models.SegmentProjection {
	result := make(map[string]models.SegmentProjection)
	if len(languages) == 0 {
		return result
	}

	wanted := make(map[string]struct{}, len(languages))
	for _, lang := range languages {
		wanted[lang] = struct{}{}
	}

	for _, seg := range pool {
		if seg.Variant != variant {
			continue
		}
		if _, ok := wanted[seg.Language]; !ok {
			continue
		}
		if _, taken := result[seg.Language]; taken {
			continue
		}
		result[seg.Language] = models.SegmentProjection{
			ID:      seg.ID,
			Content: seg.Content,
		}
		if len(result) == len(wanted) {
			break
		}
	}

	return result
}
