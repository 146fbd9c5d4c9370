package config

const (
	// MaxLanguagesPerAxis caps how many language codes a single recitation
	// axis may request. Each code becomes a map key in every output segment.
	MaxLanguagesPerAxis = 16

	// MaxSearchLength is the maximum length of a recitation title search.
	MaxSearchLength = 255

	// MaxBatchIDs bounds the number of IDs sent in one ANY($1) lookup.
	// Larger tables of contents are split into several queries inside
	// a single repository call.
	MaxBatchIDs = 1000
)
