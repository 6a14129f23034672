package fuzzdex

import (
	"github.com/kdessy/fuzzdex/internal/aggregate"
	"github.com/kdessy/fuzzdex/internal/query"
	"github.com/kdessy/fuzzdex/internal/registry"
)

// LogicalQuery is a compiled JSON-shaped boolean tree (spec.md §4.10).
type LogicalQuery = query.Expr

// Leaf is a single compiled key/pattern leaf within a LogicalQuery.
type Leaf = query.Leaf

// CompileLogicalQuery compiles a JSON-shaped node into a LogicalQuery.
func CompileLogicalQuery(node map[string]any) (LogicalQuery, error) {
	return query.Compile(node)
}

// ConvertToExplicit rewrites the implicit-AND shorthand of a logical query
// node into its explicit {$and: [...]} form. See internal/query for the
// idempotence law this satisfies.
func ConvertToExplicit(node map[string]any) map[string]any {
	return query.ConvertToExplicit(node)
}

// SearchLogical runs a compiled logical query against the index. Each
// leaf's key-id is resolved against the declared keys, its pattern is
// compiled through the same searcher dispatch as Search, and admission is
// decided by the boolean tree rather than by requiring every key to match
// (spec.md §4.12). The combined score is the weighted product (spec.md
// §4.12) over exactly the leaves the boolean tree actually evaluated.
func (f *Fuse[T]) SearchLogical(q LogicalQuery) ([]FuseResult[T], error) {
	searchers := make(map[query.Leaf]registry.Searcher)
	var buildErr error
	collectLeaves(q, func(leaf query.Leaf) {
		if _, ok := searchers[leaf]; ok {
			return
		}
		s, err := registry.Default().Build(leaf.Pattern, f.opts)
		if err != nil {
			buildErr = err
			return
		}
		searchers[leaf] = s
	})
	if buildErr != nil {
		return nil, buildErr
	}

	keys := f.keys.Keys()
	matchesByRef := make(map[int][]Match)
	var recordResults []aggregate.RecordResult

	for _, rec := range f.index.Records() {
		var perKey []aggregate.KeyScore
		var leafErr error

		isMatch, _ := query.Eval(q, func(leaf query.Leaf) (bool, float64) {
			slot, ok := f.keys.Slot(leaf.KeyID)
			if !ok || slot >= len(rec.Slots) {
				perKey = append(perKey, aggregate.KeyScore{KeyID: leaf.KeyID, Score: 1.0})
				return false, 1.0
			}

			searcher := searchers[leaf]
			ks, err := aggregate.ScoreEntry(leaf.KeyID, keys[slot].Weight, rec.Slots[slot], func(text []rune) (bool, float64, [][2]int, error) {
				res, err := searcher.Search(text)
				if err != nil {
					return false, 0, nil, err
				}
				return res.IsMatch, res.Score, res.Indices, nil
			})
			if err != nil {
				leafErr = err
				return false, 1.0
			}

			perKey = append(perKey, ks)
			return ks.Matched, ks.Score
		})
		if leafErr != nil {
			return nil, leafErr
		}
		if !isMatch {
			continue
		}

		score := aggregate.CombinedScore(perKey, f.opts.IgnoreFieldNorm)
		recordResults = append(recordResults, aggregate.RecordResult{RefIndex: rec.I, Score: score})
		if f.opts.IncludeMatches {
			matchesByRef[rec.I] = toMatches(perKey)
		}
	}

	if f.opts.ShouldSort {
		aggregate.SortResults(recordResults)
	}

	results := make([]FuseResult[T], 0, len(recordResults))
	for _, rr := range recordResults {
		fr := FuseResult[T]{Item: f.records[rr.RefIndex], RefIndex: uint32(rr.RefIndex)}
		if f.opts.IncludeScore {
			s := rr.Score
			fr.Score = &s
		}
		if f.opts.IncludeMatches {
			fr.Matches = matchesByRef[rr.RefIndex]
		}
		results = append(results, fr)
	}
	return results, nil
}

// LeafKeyIDs returns the distinct key ids referenced anywhere in q, in the
// order first encountered. Callers (such as a CLI) use it to derive the
// Options.Keys a logical query needs before building an index.
func LeafKeyIDs(q LogicalQuery) []string {
	seen := map[string]bool{}
	var ids []string
	collectLeaves(q, func(l query.Leaf) {
		if seen[l.KeyID] {
			return
		}
		seen[l.KeyID] = true
		ids = append(ids, l.KeyID)
	})
	return ids
}

func collectLeaves(expr query.Expr, fn func(query.Leaf)) {
	switch e := expr.(type) {
	case query.Leaf:
		fn(e)
	case query.And:
		for _, c := range e.Children {
			collectLeaves(c, fn)
		}
	case query.Or:
		for _, c := range e.Children {
			collectLeaves(c, fn)
		}
	}
}
