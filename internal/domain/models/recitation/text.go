package recitation

import "time"

// TextType distinguishes a root text from its versions within a text group
type TextType string

const (
	TextTypeRoot    TextType = "root_text"
	TextTypeVersion TextType = "version"
)

type Text struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Language      string    `json:"language" db:"language"`
	GroupID       string    `json:"group_id" db:"group_id"`
	Type          TextType  `json:"type" db:"type"`
	CollectionID  *string   `json:"collection_id" db:"collection_id"`
	PublishedDate time.Time `json:"published_date" db:"published_date"`
}

// TableOfContent is one navigation entry of a text. Only the first section
// of each entry takes part in recitation aggregation.
type TableOfContent struct {
	ID       string    `json:"id" db:"id"`
	TextID   string    `json:"text_id" db:"text_id"`
	Order    int       `json:"order" db:"order_index"`
	Sections []Section `json:"sections" db:"sections"` // Stored as JSONB
}

type Section struct {
	ID            string           `json:"id"`
	Title         string           `json:"title,omitempty"`
	SectionNumber int              `json:"section_number"`
	ParentID      *string          `json:"parent_id,omitempty"`
	Segments      []SectionSegment `json:"segments"`
	Sections      []Section        `json:"sections,omitempty"`
}

type SectionSegment struct {
	SegmentID     string `json:"segment_id"`
	SegmentNumber int    `json:"segment_number"`
}

// TextImage links a text to the storage key of its cover image
type TextImage struct {
	TextID   string `json:"text_id" db:"text_id"`
	ImageKey string `json:"image_key" db:"image_key"`
}

// Collection groups texts; recitations live in the collection whose slug is configured
type Collection struct {
	ID       string  `json:"id" db:"id"`
	Slug     string  `json:"slug" db:"slug"`
	ParentID *string `json:"parent_id" db:"parent_id"`
}
