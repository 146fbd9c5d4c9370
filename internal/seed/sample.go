package seed

import (
	"time"

	models "webuddhist/internal/domain/models/recitation"
)

// Fixed IDs keep reseeding idempotent
const (
	SampleCollectionID  = "0b7d9a52-52a1-4f0e-9d4e-1c1b7f0c0a01"
	SampleRootTextID    = "0b7d9a52-52a1-4f0e-9d4e-1c1b7f0c0b01"
	SampleEnglishTextID = "0b7d9a52-52a1-4f0e-9d4e-1c1b7f0c0b02"
	SampleGroupID       = "0b7d9a52-52a1-4f0e-9d4e-1c1b7f0c0c01"
)

// SampleDataset builds a two-line Tara praise: a Tibetan root text, its
// English version, and per-line translation, transliteration and adaptation
// segments linked to the root lines.
func SampleDataset(collectionSlug string) *Dataset {
	published := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	collectionID := SampleCollectionID

	root := models.Text{
		ID: SampleRootTextID, Title: "སྒྲོལ་མ་ཉི་ཤུ་རྩ་གཅིག་ལ་བསྟོད་པ།", Language: "bo",
		GroupID: SampleGroupID, Type: models.TextTypeRoot, CollectionID: &collectionID, PublishedDate: published,
	}
	english := models.Text{
		ID: SampleEnglishTextID, Title: "Praise to the Twenty-One Taras", Language: "en",
		GroupID: SampleGroupID, Type: models.TextTypeVersion, PublishedDate: published,
	}

	lines := []struct {
		id, bo, en, wylie, plain string
	}{
		{"line-1", "ཨོཾ་རྗེ་བཙུན་མ་འཕགས་མ་སྒྲོལ་མ་ལ་ཕྱག་འཚལ་ལོ།", "Om, homage to the noble Tara.", "om rje btsun ma 'phags ma sgrol ma la phyag 'tshal lo", "Om, I bow to noble Tara."},
		{"line-2", "ཕྱག་འཚལ་སྒྲོལ་མ་མྱུར་མ་དཔའ་མོ།", "Homage, Tara, swift heroine.", "phyag 'tshal sgrol ma myur ma dpa' mo", "I bow to Tara, quick and brave."},
	}

	var segments []models.Segment
	section := models.Section{ID: "section-1", Title: "Praise", SectionNumber: 1}
	for i, line := range lines {
		rootID := "seg-bo-" + line.id
		trID := "seg-en-tr-" + line.id
		tlID := "seg-en-tl-" + line.id
		adID := "seg-en-ad-" + line.id

		segments = append(segments,
			models.Segment{
				ID: rootID, TextID: root.ID, Content: line.bo, Type: models.SegmentTypeRoot,
				Variant: models.VariantRecitation, Language: "bo",
				Mappings: []models.Mapping{{TextID: english.ID, SegmentIDs: []string{trID, tlID, adID}}},
			},
			models.Segment{ID: trID, TextID: english.ID, Content: line.en, Type: models.SegmentTypeVersion, Variant: models.VariantTranslation, Language: "en"},
			models.Segment{ID: tlID, TextID: english.ID, Content: line.wylie, Type: models.SegmentTypeVersion, Variant: models.VariantTransliteration, Language: "en"},
			models.Segment{ID: adID, TextID: english.ID, Content: line.plain, Type: models.SegmentTypeVersion, Variant: models.VariantAdaptation, Language: "en"},
		)
		section.Segments = append(section.Segments, models.SectionSegment{SegmentID: rootID, SegmentNumber: i + 1})
	}

	return &Dataset{
		Collections: []models.Collection{{ID: collectionID, Slug: collectionSlug}},
		Texts:       []models.Text{root, english},
		Contents: []models.TableOfContent{
			{ID: "toc-" + root.ID, TextID: root.ID, Order: 1, Sections: []models.Section{section}},
		},
		Segments: segments,
		Images:   []models.TextImage{{TextID: root.ID, ImageKey: "recitations/tara.png"}},
	}
}
