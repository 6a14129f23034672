package types

// Options is the canonical configuration consumed by the search core. It is
// a plain struct with exported fields, the same shape the teacher library
// uses for its own MergeOptions/OperationOptions — no functional-options
// builder, no hidden defaults beyond what DefaultOptions returns.
type Options struct {
	// IsCaseSensitive disables lowercase folding when true.
	IsCaseSensitive bool

	// IgnoreDiacritics enables NFD decomposition + combining-mark removal.
	IgnoreDiacritics bool

	// IncludeScore includes the combined score in results.
	IncludeScore bool

	// IncludeMatches includes per-key match indices in results.
	IncludeMatches bool

	// ShouldSort applies the default stable sort to results.
	ShouldSort bool

	// FindAllMatches extends the bitap sweep window to the end of the text
	// instead of bounding it near the expected location.
	FindAllMatches bool

	// MinMatchCharLength drops emitted index runs shorter than this.
	MinMatchCharLength int

	// Location is the expected match position used by the proximity term.
	Location int

	// Threshold is the maximum admissible score in [0,1].
	Threshold float64

	// Distance is the proximity scale; 0 means an exact-location match.
	Distance int

	// UseExtendedSearch selects the extended query-language searcher
	// instead of the plain bitap fuzzy searcher.
	UseExtendedSearch bool

	// IgnoreLocation makes the bitap score equal to accuracy alone.
	IgnoreLocation bool

	// IgnoreFieldNorm drops the field-length norm from the weighted
	// product when combining per-key scores.
	IgnoreFieldNorm bool

	// FieldNormWeight is the exponent scale used by the field-length norm.
	FieldNormWeight float64

	// Keys lists the per-record fields to search. Empty means only records
	// that are themselves strings are searched; object records never match.
	Keys []KeySpec
}

// DefaultOptions returns the spec-mandated defaults (spec.md §6).
func DefaultOptions() Options {
	return Options{
		IsCaseSensitive:    false,
		IgnoreDiacritics:   false,
		IncludeScore:       false,
		IncludeMatches:     false,
		ShouldSort:         true,
		FindAllMatches:     false,
		MinMatchCharLength: 1,
		Location:           0,
		Threshold:          0.6,
		Distance:           100,
		UseExtendedSearch:  false,
		IgnoreLocation:     false,
		IgnoreFieldNorm:    false,
		FieldNormWeight:    1,
		Keys:               nil,
	}
}
