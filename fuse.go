package fuzzdex

import (
	"encoding/json"

	"github.com/kdessy/fuzzdex/internal/aggregate"
	"github.com/kdessy/fuzzdex/internal/fieldnorm"
	"github.com/kdessy/fuzzdex/internal/keystore"
	"github.com/kdessy/fuzzdex/internal/recordindex"
	"github.com/kdessy/fuzzdex/internal/registry"
)

// Fuse indexes a slice of records of type T and answers fuzzy/extended
// queries against the key paths declared in Options.Keys.
type Fuse[T any] struct {
	opts      Options
	keys      *keystore.Store
	fieldNorm *fieldnorm.Normalizer
	index     *recordindex.Index
	records   []T
	toNode    func(T) any
}

// DefaultToNode converts a record to a tree-shaped value via a JSON
// marshal/unmarshal round trip: struct fields become a map[string]any,
// slices become []any, and so on. It's the default used by New when
// toNode is nil, and the natural choice for T's coming from typed Go
// structs with json tags.
func DefaultToNode[T any](v T) any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// New builds a Fuse over records. toNode converts one record into the
// tree-shaped value the path extractor (C2) walks; pass nil to use
// DefaultToNode.
func New[T any](records []T, opts Options, toNode func(T) any) (*Fuse[T], error) {
	if toNode == nil {
		toNode = DefaultToNode[T]
	}

	store, err := keystore.New(opts.Keys)
	if err != nil {
		return nil, err
	}

	fn := fieldnorm.New(opts.FieldNormWeight)
	idx := recordindex.New(store, fn, opts.IsCaseSensitive, opts.IgnoreDiacritics)

	raw := make([]any, len(records))
	for i, r := range records {
		raw[i] = toNode(r)
	}
	idx.Build(raw)

	return &Fuse[T]{
		opts:      opts,
		keys:      store,
		fieldNorm: fn,
		index:     idx,
		records:   append([]T(nil), records...),
		toNode:    toNode,
	}, nil
}

// Len returns the number of indexed records.
func (f *Fuse[T]) Len() int { return len(f.records) }

// Add appends record and indexes it, assigning it the next dense index.
func (f *Fuse[T]) Add(record T) {
	f.records = append(f.records, record)
	f.index.Add(f.toNode(record))
}

// RemoveAt deletes the record at i and re-densifies every record after it.
func (f *Fuse[T]) RemoveAt(i int) {
	if i < 0 || i >= len(f.records) {
		return
	}
	f.records = append(f.records[:i], f.records[i+1:]...)
	f.index.RemoveAt(i)
}

// Search runs pattern against every declared key (or, for string records,
// against the record itself), combines per-key scores, admits records
// where every key matched, and returns them in the configured order
// (spec.md §2 control flow, §4.12).
func (f *Fuse[T]) Search(pattern string) ([]FuseResult[T], error) {
	searcher, err := registry.Default().Build(pattern, f.opts)
	if err != nil {
		return nil, err
	}

	searchFn := func(text []rune) (bool, float64, [][2]int, error) {
		res, err := searcher.Search(text)
		if err != nil {
			return false, 0, nil, err
		}
		return res.IsMatch, res.Score, res.Indices, nil
	}

	keys := f.keys.Keys()
	matchesByRef := make(map[int][]Match)
	var recordResults []aggregate.RecordResult

	for _, rec := range f.index.Records() {
		perKey, err := f.scoreRecord(rec, keys, searchFn)
		if err != nil {
			return nil, err
		}
		if perKey == nil || !aggregate.Admitted(perKey) {
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

func (f *Fuse[T]) scoreRecord(rec recordindex.Record, keys []keystore.Key, searchFn aggregate.SearchFunc) ([]aggregate.KeyScore, error) {
	if len(keys) == 0 {
		if rec.String == nil {
			return nil, nil
		}
		isMatch, score, indices, err := searchFn([]rune(rec.String.V))
		if err != nil {
			return nil, err
		}
		return []aggregate.KeyScore{{
			Weight:  1,
			Norm:    rec.String.N,
			Matched: isMatch,
			Score:   score,
			Value:   rec.String.V,
			Indices: indices,
		}}, nil
	}

	perKey := make([]aggregate.KeyScore, 0, len(keys))
	for slot, key := range keys {
		var entry recordindex.Entry
		if slot < len(rec.Slots) {
			entry = rec.Slots[slot]
		}
		ks, err := aggregate.ScoreEntry(key.ID, key.Weight, entry, searchFn)
		if err != nil {
			return nil, err
		}
		perKey = append(perKey, ks)
	}
	return perKey, nil
}

func toMatches(perKey []aggregate.KeyScore) []Match {
	var ms []Match
	for _, ks := range perKey {
		if len(ks.Indices) == 0 {
			continue
		}
		m := Match{Key: ks.KeyID, Value: ks.Value, Indices: ks.Indices}
		if ks.ElementIndex != nil {
			ri := uint32(*ks.ElementIndex)
			m.RefIndex = &ri
		}
		ms = append(ms, m)
	}
	return ms
}
