package extended

import (
	"strings"

	"github.com/kdessy/fuzzdex/internal/bitap"
	"github.com/kdessy/fuzzdex/internal/normalize"
)

// ParseQuery compiles an extended query string into a 2-D structure: outer
// OR, inner AND (spec.md §4.9). Each token's literal is normalized with the
// same case/diacritic options the index was built with, so Matcher.Run can
// compare it directly against already-normalized record text.
func ParseQuery(query string, caseSensitive, ignoreDiacritics bool) [][]Matcher {
	orGroups := strings.Split(query, "|")
	groups := make([][]Matcher, 0, len(orGroups))

	for _, group := range orGroups {
		var matchers []Matcher
		for _, tok := range splitRespectingQuotes(group) {
			if tok == "" {
				continue
			}
			matchers = append(matchers, compileToken(tok, caseSensitive, ignoreDiacritics))
		}
		if len(matchers) > 0 {
			groups = append(groups, matchers)
		}
	}

	return groups
}

// compileToken classifies one raw token (spec.md §4.8 table) and builds
// its Matcher, pre-building the bitap chunk set for fuzzy tokens.
func compileToken(token string, caseSensitive, ignoreDiacritics bool) Matcher {
	kind, rawLiteral := classifyToken(token)
	literal := normalize.Normalize(rawLiteral, caseSensitive, ignoreDiacritics)

	m := Matcher{Kind: kind, Literal: literal}
	if kind == KindFuzzy {
		m.Pattern = []rune(literal)
		m.Chunks = bitap.ChunkPattern(m.Pattern)
	}
	return m
}

// classifyToken applies the fixed classification order of spec.md §4.8:
// exact, include, prefix, inverse-prefix, suffix, inverse-suffix,
// inverse-exact, fuzzy. The structural checks (leading/trailing sigil) can
// overlap (a token such as "=abc$" or "^abc$" satisfies two of them), so
// the first case in this order that matches decides the kind.
func classifyToken(token string) (Kind, string) {
	switch {
	case strings.HasPrefix(token, "="):
		return KindExact, stripQuotes(token[1:])
	case strings.HasPrefix(token, "'"):
		return KindInclude, stripQuotes(token[1:])
	case strings.HasPrefix(token, "^"):
		return KindPrefix, stripQuotes(token[1:])
	case strings.HasPrefix(token, "!^"):
		return KindInversePrefix, stripQuotes(token[2:])
	case strings.HasSuffix(token, "$") && !strings.HasPrefix(token, "!"):
		return KindSuffix, stripQuotes(token[:len(token)-1])
	case strings.HasPrefix(token, "!") && strings.HasSuffix(token, "$"):
		return KindInverseSuffix, stripQuotes(token[1 : len(token)-1])
	case strings.HasPrefix(token, "!"):
		return KindInverseExact, stripQuotes(token[1:])
	default:
		return KindFuzzy, stripQuotes(token)
	}
}

// splitRespectingQuotes splits on ASCII spaces, except spaces inside a
// double-quoted run, which are preserved as part of the token.
func splitRespectingQuotes(s string) []string {
	var tokens []string
	var cur strings.Builder
	inQuotes := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ' ' && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// GroupResult is the outcome of running one AND group (or a whole OR
// query) against a text.
type GroupResult struct {
	IsMatch bool
	Score   float64
	Indices [][2]int
}

// RunGroups executes the OR-of-AND structure produced by ParseQuery
// against text: the first AND group in which every matcher succeeds wins
// (spec.md §4.9); its score is the mean of its matchers' scores and its
// indices are the union of theirs.
func RunGroups(groups [][]Matcher, text []rune, opts bitap.Options) (GroupResult, error) {
	for _, group := range groups {
		res, allMatch, err := runGroup(group, text, opts)
		if err != nil {
			return GroupResult{}, err
		}
		if allMatch {
			return res, nil
		}
	}
	return GroupResult{IsMatch: false, Score: 1.0}, nil
}

func runGroup(group []Matcher, text []rune, opts bitap.Options) (GroupResult, bool, error) {
	var totalScore float64
	var indices [][2]int
	for _, m := range group {
		res, err := m.Run(text, opts)
		if err != nil {
			return GroupResult{}, false, err
		}
		if !res.IsMatch {
			return GroupResult{IsMatch: false, Score: 1.0}, false, nil
		}
		totalScore += res.Score
		indices = append(indices, res.Indices...)
	}
	score := 1.0
	if len(group) > 0 {
		score = totalScore / float64(len(group))
	}
	return GroupResult{IsMatch: true, Score: score, Indices: indices}, true, nil
}
