package fuzzdex

import (
	"github.com/kdessy/fuzzdex/internal/fieldnorm"
	"github.com/kdessy/fuzzdex/internal/keystore"
	"github.com/kdessy/fuzzdex/internal/recordindex"
	"github.com/kdessy/fuzzdex/pkg/types"
)

// KeySnapshot is one key's serializable shape: path, dotted id, and its
// normalized weight. getFn is never serialized (spec.md §6); HasGetFn
// only records that the caller must re-bind one on Load.
type KeySnapshot struct {
	Path     []string
	ID       string
	Weight   float64
	HasGetFn bool
}

// IndexValueSnapshot is one serializable extracted value.
type IndexValueSnapshot struct {
	V string
	N float64
	I *int // set for values that came from an array element
}

// RecordSnapshot is one record's serializable shape: either a string
// record ({i, v, n}) or an object record ({i, slots}), per spec.md §6.
type RecordSnapshot struct {
	I int

	// String-record fields.
	V string
	N float64

	// Object-record fields: slot index -> IndexValueSnapshot or
	// []IndexValueSnapshot.
	Slots map[int]any
}

// Snapshot is the pure-data shape of a built index (spec.md §6): a pair of
// (keys, records) with no functions, safe to serialize with any codec.
type Snapshot struct {
	Keys    []KeySnapshot
	Records []RecordSnapshot
}

// Snapshot captures f's current index as a pure-data structure.
func (f *Fuse[T]) Snapshot() Snapshot {
	keys := f.keys.Keys()
	snapKeys := make([]KeySnapshot, len(keys))
	for i, k := range keys {
		snapKeys[i] = KeySnapshot{
			Path:     append([]string(nil), k.Path...),
			ID:       k.ID,
			Weight:   k.Weight,
			HasGetFn: k.GetFn != nil,
		}
	}

	records := f.index.Records()
	snapRecords := make([]RecordSnapshot, len(records))
	for i, rec := range records {
		rs := RecordSnapshot{I: rec.I}

		if rec.String != nil {
			rs.V = rec.String.V
			rs.N = rec.String.N
		}

		if rec.Slots != nil {
			rs.Slots = make(map[int]any, len(rec.Slots))
			for slot, entry := range rec.Slots {
				switch {
				case entry.Single != nil:
					rs.Slots[slot] = IndexValueSnapshot{V: entry.Single.V, N: entry.Single.N}
				case len(entry.Array) > 0:
					arr := make([]IndexValueSnapshot, len(entry.Array))
					for j, v := range entry.Array {
						idx := *v.I
						arr[j] = IndexValueSnapshot{V: v.V, N: v.N, I: &idx}
					}
					rs.Slots[slot] = arr
				}
			}
		}

		snapRecords[i] = rs
	}

	return Snapshot{Keys: snapKeys, Records: snapRecords}
}

// Load rehydrates a Fuse from a Snapshot plus the original typed records
// (the snapshot only carries their extracted/normalized text, not the
// records themselves). getFns re-binds any key whose HasGetFn was true;
// keys without an entry there fall back to path walking on future Add
// calls. opts should be the same Options the snapshot was built with,
// minus Keys (which Load reconstructs from the snapshot).
func Load[T any](snap Snapshot, records []T, getFns map[string]types.GetterFunc, opts Options) (*Fuse[T], error) {
	specs := make([]types.KeySpec, len(snap.Keys))
	for i, k := range snap.Keys {
		spec := types.KeySpec{Path: append([]string(nil), k.Path...), Weight: k.Weight}
		if k.HasGetFn && getFns != nil {
			spec.GetFn = getFns[k.ID]
		}
		specs[i] = spec
	}
	opts.Keys = specs

	store, err := keystore.New(specs)
	if err != nil {
		return nil, err
	}

	fn := fieldnorm.New(opts.FieldNormWeight)
	idx := recordindex.New(store, fn, opts.IsCaseSensitive, opts.IgnoreDiacritics)

	loaded := make([]recordindex.Record, len(snap.Records))
	for i, rs := range snap.Records {
		r := recordindex.Record{I: rs.I}

		if rs.Slots == nil {
			if rs.V != "" {
				r.String = &recordindex.IndexValue{V: rs.V, N: rs.N}
			}
		} else {
			slots := make([]recordindex.Entry, len(store.Keys()))
			for slot, raw := range rs.Slots {
				if slot < 0 || slot >= len(slots) {
					return nil, types.NewIncorrectIndexType()
				}
				switch v := raw.(type) {
				case IndexValueSnapshot:
					val := v
					slots[slot] = recordindex.Entry{Single: &recordindex.IndexValue{V: val.V, N: val.N}}
				case []IndexValueSnapshot:
					arr := make([]recordindex.IndexValue, len(v))
					for j, iv := range v {
						idx := iv.I
						arr[j] = recordindex.IndexValue{V: iv.V, N: iv.N, I: idx}
					}
					slots[slot] = recordindex.Entry{Array: arr}
				default:
					return nil, types.NewIncorrectIndexType()
				}
			}
			r.Slots = slots
		}

		loaded[i] = r
	}
	idx.LoadRecords(loaded)

	return &Fuse[T]{
		opts:      opts,
		keys:      store,
		fieldNorm: fn,
		index:     idx,
		records:   append([]T(nil), records...),
		toNode:    DefaultToNode[T],
	}, nil
}
