package fuzzdex

import (
	"github.com/kdessy/fuzzdex/internal/bitap"
	"github.com/kdessy/fuzzdex/internal/extended"
)

// ExtendedResult is the outcome of a standalone extended-query search.
type ExtendedResult struct {
	IsMatch bool
	Score   float64
	Indices [][2]int
}

// ExtendedSearch compiles an extended boolean query (spec.md §4.8/§4.9)
// once so it can be run against many texts.
type ExtendedSearch struct {
	groups [][]extended.Matcher
	opts   bitap.Options
}

// NewExtendedSearch compiles query with the given options. Literals are
// normalized with opts.IsCaseSensitive / opts.IgnoreDiacritics so they can
// be compared directly against already-normalized text.
func NewExtendedSearch(query string, opts Options) ExtendedSearch {
	return ExtendedSearch{
		groups: extended.ParseQuery(query, opts.IsCaseSensitive, opts.IgnoreDiacritics),
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

// SearchIn runs the compiled query against text.
func (e ExtendedSearch) SearchIn(text string) (ExtendedResult, error) {
	res, err := extended.RunGroups(e.groups, []rune(text), e.opts)
	if err != nil {
		return ExtendedResult{}, err
	}
	return ExtendedResult{IsMatch: res.IsMatch, Score: res.Score, Indices: res.Indices}, nil
}
