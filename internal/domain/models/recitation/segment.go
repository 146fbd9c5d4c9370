package recitation

// SegmentType mirrors the type of the text a segment belongs to
type SegmentType string

const (
	SegmentTypeRoot    SegmentType = "root_text"
	SegmentTypeVersion SegmentType = "version"
)

// VariantType tags a segment with the recitation axis it can serve.
type VariantType string

const (
	VariantRecitation      VariantType = "recitation"
	VariantTranslation     VariantType = "translation"
	VariantTransliteration VariantType = "transliteration"
	VariantAdaptation      VariantType = "adaptation"
)

// Valid reports whether v is one of the known variant types
func (v VariantType) Valid() bool {
	switch v {
	case VariantRecitation, VariantTranslation, VariantTransliteration, VariantAdaptation:
		return true
	}
	return false
}

type Segment struct {
	ID       string      `json:"id" db:"id"`
	TextID   string      `json:"text_id" db:"text_id"`
	Content  string      `json:"content" db:"content"`
	Mappings []Mapping   `json:"mapping"`
	Type     SegmentType `json:"type" db:"type"`
	Variant  VariantType `json:"variant,omitempty" db:"variant"` // Empty when the segment serves no axis
	Language string      `json:"language" db:"language"`
}

// Mapping links a segment to its counterpart segments in another text
type Mapping struct {
	TextID     string   `json:"text_id"`
	SegmentIDs []string `json:"segments"`
}

// FetchStatus tells callers whether an empty store result means "no data"
// or "store could not answer".
type FetchStatus int

const (
	FetchOK FetchStatus = iota
	FetchEmpty
	FetchUnavailable
	// FetchCanceled means the caller's context ended before the store answered
	FetchCanceled
)

func (s FetchStatus) String() string {
	switch s {
	case FetchOK:
		return "ok"
	case FetchEmpty:
		return "empty"
	case FetchUnavailable:
		return "unavailable"
	case FetchCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// SegmentBatch is the result of a batch segment lookup, keyed by segment ID
type SegmentBatch struct {
	Segments map[string]Segment
	Status   FetchStatus
	Err      error // context error, set only with FetchCanceled
}

// RelatedSegmentBatch is the result of a batch related-segment lookup, keyed by parent segment ID
type RelatedSegmentBatch struct {
	Related map[string][]Segment
	Status  FetchStatus
	Err     error // context error, set only with FetchCanceled
}
