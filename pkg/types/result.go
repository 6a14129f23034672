package types

// Match describes where a pattern matched within one key's extracted text.
type Match struct {
	// Key is the dotted key id this match came from. Empty when the record
	// itself was a bare string.
	Key string

	// RefIndex is the original array position when the matched field came
	// from an array-valued key.
	RefIndex *uint32

	// Value is the normalized text that was searched.
	Value string

	// Indices are inclusive [start, end] code-point ranges within Value.
	Indices [][2]int
}

// FuseResult is one ranked record returned from a search.
type FuseResult[T any] struct {
	// Item is the caller's original record.
	Item T

	// RefIndex is the record's stable position in the index.
	RefIndex uint32

	// Score is the combined record score; present when IncludeScore is set.
	Score *float64

	// Matches holds per-key match indices; present when IncludeMatches is set.
	Matches []Match
}
