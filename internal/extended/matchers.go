// Package extended implements the eight extended-query match primitives
// (spec.md §4.8) and the OR-of-AND query parser that dispatches tokens to
// them (spec.md §4.9).
package extended

import (
	"strings"

	"github.com/kdessy/fuzzdex/internal/bitap"
)

// Kind tags which of the eight primitives a Matcher runs.
type Kind int

const (
	KindExact Kind = iota
	KindInclude
	KindPrefix
	KindInversePrefix
	KindSuffix
	KindInverseSuffix
	KindInverseExact
	KindFuzzy
)

// Matcher is one compiled token: its kind and the literal it tests
// against (empty/unused for Fuzzy, which instead carries a bitap pattern).
type Matcher struct {
	Kind    Kind
	Literal string

	// Fuzzy-only fields, populated by the parser for KindFuzzy tokens.
	Pattern  []rune
	Chunks   []bitap.Chunk
}

// MatchResult is the outcome of running one Matcher against one text.
type MatchResult struct {
	IsMatch bool
	Score   float64
	Indices [][2]int
}

// Run executes m against text (already normalized by the caller). opts is
// only consulted for Fuzzy matchers.
func (m Matcher) Run(text []rune, opts bitap.Options) (MatchResult, error) {
	switch m.Kind {
	case KindExact:
		return runExact(text, []rune(m.Literal)), nil
	case KindInclude:
		return runInclude(text, []rune(m.Literal)), nil
	case KindPrefix:
		return runPrefix(text, []rune(m.Literal)), nil
	case KindInversePrefix:
		return runInversePrefix(text, []rune(m.Literal)), nil
	case KindSuffix:
		return runSuffix(text, []rune(m.Literal)), nil
	case KindInverseSuffix:
		return runInverseSuffix(text, []rune(m.Literal)), nil
	case KindInverseExact:
		return runInverseExact(text, []rune(m.Literal)), nil
	default: // KindFuzzy
		res, err := bitap.SearchChunked(text, m.Chunks, opts)
		if err != nil {
			return MatchResult{}, err
		}
		return MatchResult{IsMatch: res.IsMatch, Score: res.Score, Indices: res.Indices}, nil
	}
}

func nonFuzzyScore(isMatch bool) float64 {
	if isMatch {
		return 0.0
	}
	return 1.0
}

func runExact(text, lit []rune) MatchResult {
	isMatch := runesEqual(text, lit)
	res := MatchResult{IsMatch: isMatch, Score: nonFuzzyScore(isMatch)}
	if isMatch && len(lit) > 0 {
		res.Indices = [][2]int{{0, len(lit) - 1}}
	}
	return res
}

func runInclude(text, lit []rune) MatchResult {
	if len(lit) == 0 {
		return MatchResult{IsMatch: false, Score: 1.0}
	}
	var indices [][2]int
	for i := 0; i+len(lit) <= len(text); i++ {
		if runesEqual(text[i:i+len(lit)], lit) {
			indices = append(indices, [2]int{i, i + len(lit) - 1})
			i += len(lit) - 1
		}
	}
	isMatch := len(indices) > 0
	return MatchResult{IsMatch: isMatch, Score: nonFuzzyScore(isMatch), Indices: indices}
}

func runPrefix(text, lit []rune) MatchResult {
	if len(lit) == 0 {
		return emptyLiteralMatch(text)
	}
	isMatch := len(lit) <= len(text) && runesEqual(text[:len(lit)], lit)
	res := MatchResult{IsMatch: isMatch, Score: nonFuzzyScore(isMatch)}
	if isMatch {
		res.Indices = [][2]int{{0, len(lit) - 1}}
	}
	return res
}

// emptyLiteralMatch implements the empty-pattern edge case for the
// prefix/suffix primitives (spec.md §9): an empty literal matches any
// text, with indices [[len(text)-1, len(text)-1]] (or [[0,0]] for empty
// text).
func emptyLiteralMatch(text []rune) MatchResult {
	if len(text) == 0 {
		return MatchResult{IsMatch: true, Score: 0.0, Indices: [][2]int{{0, 0}}}
	}
	return MatchResult{IsMatch: true, Score: 0.0, Indices: [][2]int{{len(text) - 1, len(text) - 1}}}
}

func runInversePrefix(text, lit []rune) MatchResult {
	hasPrefix := len(lit) <= len(text) && runesEqual(text[:len(lit)], lit)
	isMatch := !hasPrefix
	res := MatchResult{IsMatch: isMatch, Score: nonFuzzyScore(isMatch)}
	if isMatch && len(text) > 0 {
		res.Indices = [][2]int{{0, len(text) - 1}}
	}
	return res
}

func runSuffix(text, lit []rune) MatchResult {
	if len(lit) == 0 {
		return emptyLiteralMatch(text)
	}
	isMatch := len(lit) <= len(text) && runesEqual(text[len(text)-len(lit):], lit)
	res := MatchResult{IsMatch: isMatch, Score: nonFuzzyScore(isMatch)}
	if isMatch {
		res.Indices = [][2]int{{len(text) - len(lit), len(text) - 1}}
	}
	return res
}

func runInverseSuffix(text, lit []rune) MatchResult {
	hasSuffix := len(lit) <= len(text) && runesEqual(text[len(text)-len(lit):], lit)
	isMatch := !hasSuffix
	res := MatchResult{IsMatch: isMatch, Score: nonFuzzyScore(isMatch)}
	if isMatch && len(text) > 0 {
		res.Indices = [][2]int{{0, len(text) - 1}}
	}
	return res
}

func runInverseExact(text, lit []rune) MatchResult {
	contains := len(lit) == 0 || indexOfRunes(text, lit) >= 0
	isMatch := !contains
	res := MatchResult{IsMatch: isMatch, Score: nonFuzzyScore(isMatch)}
	if isMatch && len(text) > 0 {
		res.Indices = [][2]int{{0, len(text) - 1}}
	}
	return res
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func indexOfRunes(text, lit []rune) int {
	for i := 0; i+len(lit) <= len(text); i++ {
		if runesEqual(text[i:i+len(lit)], lit) {
			return i
		}
	}
	return -1
}

// stripQuotes removes a single pair of enclosing double quotes, if present.
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
