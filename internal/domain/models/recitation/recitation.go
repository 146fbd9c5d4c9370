package recitation

import (
	"sort"
	"strings"
)

// RecitationDetailsRequest selects which variant axes to return and in which languages.
// A nil list means the axis is not requested; an empty non-nil list requests
// the axis with no languages and yields an empty mapping.
type RecitationDetailsRequest struct {
	Language         string   `json:"language"`
	Recitation       []string `json:"recitation"`
	Translations     []string `json:"translations"`
	Transliterations []string `json:"transliterations"`
	Adaptations      []string `json:"adaptations"`
}

// Axis is one independently requested variant dimension
type Axis struct {
	Name      string
	Variant   VariantType
	Languages []string
}

// Requested reports whether the axis was asked for at all
func (a Axis) Requested() bool {
	return a.Languages != nil
}

// Axes returns the four axes in fixed order: recitation, translations,
// transliterations, adaptations.
func (r *RecitationDetailsRequest) Axes() []Axis {
	return []Axis{
		{Name: "recitation", Variant: VariantRecitation, Languages: r.Recitation},
		{Name: "translations", Variant: VariantTranslation, Languages: r.Translations},
		{Name: "transliterations", Variant: VariantTransliteration, Languages: r.Transliterations},
		{Name: "adaptations", Variant: VariantAdaptation, Languages: r.Adaptations},
	}
}

// NeedsMappedSegments reports whether any axis other than recitation asks for
// at least one language, in which case related segments must be fetched.
func (r *RecitationDetailsRequest) NeedsMappedSegments() bool {
	return len(r.Translations) > 0 || len(r.Transliterations) > 0 || len(r.Adaptations) > 0
}

// Fingerprint is a deterministic encoding of the request shape. Language
// lists are sorted and de-duplicated since their order never changes the result.
func (r *RecitationDetailsRequest) Fingerprint() string {
	var b strings.Builder
	b.WriteString("lang=")
	b.WriteString(r.Language)
	for _, axis := range r.Axes() {
		b.WriteByte('|')
		b.WriteString(axis.Name)
		b.WriteByte('=')
		if !axis.Requested() {
			b.WriteByte('-')
			continue
		}
		b.WriteByte('[')
		b.WriteString(strings.Join(normalizeLanguages(axis.Languages), ","))
		b.WriteByte(']')
	}
	return b.String()
}

func normalizeLanguages(languages []string) []string {
	seen := make(map[string]struct{}, len(languages))
	out := make([]string, 0, len(languages))
	for _, lang := range languages {
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// SegmentProjection is the minimal view of a matched variant segment
type SegmentProjection struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// RecitationSegment is one output unit per table-of-contents segment.
// Axes that were not requested stay nil and encode as JSON null.
type RecitationSegment struct {
	Recitation       map[string]SegmentProjection `json:"recitation"`
	Translations     map[string]SegmentProjection `json:"translations"`
	Transliterations map[string]SegmentProjection `json:"transliterations"`
	Adaptations      map[string]SegmentProjection `json:"adaptations"`
}

// Set attaches the mapping for the axis serving variant
func (s *RecitationSegment) Set(variant VariantType, mapping map[string]SegmentProjection) {
	switch variant {
	case VariantRecitation:
		s.Recitation = mapping
	case VariantTranslation:
		s.Translations = mapping
	case VariantTransliteration:
		s.Transliterations = mapping
	case VariantAdaptation:
		s.Adaptations = mapping
	}
}

type RecitationDetailsResponse struct {
	TextID   string              `json:"text_id"`
	Title    string              `json:"title"`
	Segments []RecitationSegment `json:"segments"`
}

// RecitationDTO is a recitation list entry
type RecitationDTO struct {
	TextID   string  `json:"text_id"`
	Title    string  `json:"title"`
	ImageURL *string `json:"image_url"`
}

type RecitationsResponse struct {
	Recitations []RecitationDTO `json:"recitations"`
}
