// Package aggregate merges per-key searcher results into a combined
// record score and applies the default result ordering (spec.md §4.12).
package aggregate

import (
	"math"
	"sort"

	"github.com/kdessy/fuzzdex/internal/recordindex"
)

// SearchFunc runs a compiled searcher against one normalized text value.
type SearchFunc func(text []rune) (isMatch bool, score float64, indices [][2]int, err error)

// KeyScore is one key's contribution to a record's combined score.
type KeyScore struct {
	KeyID        string
	Weight       float64
	Norm         float64
	Matched      bool
	Score        float64
	Value        string // the normalized text the winning value was scored against
	ElementIndex *int   // set when the winning value came from an array slot
	Indices      [][2]int
}

// ScoreEntry runs search against every value recordindex extracted for one
// key and reduces it to a single KeyScore: the searcher's own score for a
// scalar slot, or the minimum score across elements (with that element's
// original index) for an array slot (spec.md §4.12).
func ScoreEntry(keyID string, weight float64, entry recordindex.Entry, search SearchFunc) (KeyScore, error) {
	ks := KeyScore{KeyID: keyID, Weight: weight, Score: 1.0}

	switch {
	case entry.Single != nil:
		isMatch, score, indices, err := search([]rune(entry.Single.V))
		if err != nil {
			return KeyScore{}, err
		}
		ks.Matched = isMatch
		ks.Score = score
		ks.Norm = entry.Single.N
		ks.Value = entry.Single.V
		ks.Indices = indices

	case len(entry.Array) > 0:
		best := -1
		bestScore := math.Inf(1)
		bestMatch := false
		var bestIndices [][2]int
		var bestNorm float64
		var bestValue string

		for i, v := range entry.Array {
			isMatch, score, indices, err := search([]rune(v.V))
			if err != nil {
				return KeyScore{}, err
			}
			if score < bestScore {
				best = i
				bestScore = score
				bestMatch = isMatch
				bestIndices = indices
				bestNorm = v.N
				bestValue = v.V
			}
		}

		if best >= 0 {
			ks.Matched = bestMatch
			ks.Score = bestScore
			ks.Norm = bestNorm
			ks.Value = bestValue
			ks.Indices = bestIndices
			idx := *entry.Array[best].I
			ks.ElementIndex = &idx
		}
	}

	return ks, nil
}

// CombinedScore is the product, over every key, of
// max(score, 0.001)^(weight * norm) — lower is better. A key with no
// extracted value (Norm left at its zero value) contributes a neutral
// norm of 1 so it can't silently zero out the whole product.
func CombinedScore(perKey []KeyScore, ignoreFieldNorm bool) float64 {
	score := 1.0
	for _, k := range perKey {
		s := k.Score
		if s < 0.001 {
			s = 0.001
		}
		n := 1.0
		if !ignoreFieldNorm && k.Norm != 0 {
			n = k.Norm
		}
		score *= math.Pow(s, k.Weight*n)
	}
	return score
}

// Admitted reports whether every key in perKey matched. This is the
// AND-over-all-keys admission rule; queries compiled from a logical tree
// use internal/query's boolean evaluation instead (spec.md §4.12).
func Admitted(perKey []KeyScore) bool {
	for _, k := range perKey {
		if !k.Matched {
			return false
		}
	}
	return true
}

// RecordResult is one admitted record's combined score, ready to sort.
type RecordResult struct {
	RefIndex int
	Score    float64
	PerKey   []KeyScore
}

// SortResults orders results ascending by score, breaking ties by
// ascending original record index, in place. The sort is stable, per
// spec.md §4.12.
func SortResults(results []RecordResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].RefIndex < results[j].RefIndex
	})
}
