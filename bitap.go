package fuzzdex

import (
	"github.com/kdessy/fuzzdex/internal/bitap"
	"github.com/kdessy/fuzzdex/internal/normalize"
)

// BitapResult is the outcome of a standalone bitap search.
type BitapResult struct {
	IsMatch bool
	Score   float64
	Indices [][2]int
}

// BitapSearch compiles pattern once (chunking it if needed) so it can be
// run against many texts without re-deriving the pattern alphabet each
// time, mirroring the `BitmapSearch("world").searchIn("hello world")`
// shape from spec.md §8's end-to-end scenarios.
type BitapSearch struct {
	pattern          []rune
	chunks           []bitap.Chunk
	opts             bitap.Options
	caseSensitive    bool
	ignoreDiacritics bool
}

// NewBitapSearch compiles pattern with the given options. pattern is
// normalized the same way the index normalizes its text (spec.md §6), so
// a case-insensitive, diacritic-folding search matches regardless of the
// case/diacritics the caller wrote the pattern in.
func NewBitapSearch(pattern string, opts Options) BitapSearch {
	p := []rune(normalize.Normalize(pattern, opts.IsCaseSensitive, opts.IgnoreDiacritics))
	return BitapSearch{
		pattern:          p,
		chunks:           bitap.ChunkPattern(p),
		caseSensitive:    opts.IsCaseSensitive,
		ignoreDiacritics: opts.IgnoreDiacritics,
		opts: bitap.Options{
			Location:           opts.Location,
			Threshold:          opts.Threshold,
			Distance:           opts.Distance,
			FindAllMatches:     opts.FindAllMatches,
			IgnoreLocation:     opts.IgnoreLocation,
			IncludeMatches:     opts.IncludeMatches,
			MinMatchCharLength: opts.MinMatchCharLength,
		},
	}
}

// SearchIn normalizes text the same way the pattern was normalized, then
// runs the compiled pattern against it.
func (b BitapSearch) SearchIn(text string) (BitapResult, error) {
	normalized := normalize.Normalize(text, b.caseSensitive, b.ignoreDiacritics)
	res, err := bitap.SearchChunked([]rune(normalized), b.chunks, b.opts)
	if err != nil {
		return BitapResult{}, err
	}
	return BitapResult{IsMatch: res.IsMatch, Score: res.Score, Indices: res.Indices}, nil
}
