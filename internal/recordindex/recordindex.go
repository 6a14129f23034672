// Package recordindex builds and maintains the per-record extracted,
// normalized field index that search runs against (spec.md §4.5).
package recordindex

import (
	"github.com/kdessy/fuzzdex/internal/fieldnorm"
	"github.com/kdessy/fuzzdex/internal/keystore"
	"github.com/kdessy/fuzzdex/internal/normalize"
	"github.com/kdessy/fuzzdex/internal/pathext"
)

// IndexValue is one normalized, norm-scored text value.
type IndexValue struct {
	V string   // normalized text
	N float64  // field-length norm
	I *int     // original array index, when this value came from an array element
}

// Entry is what's stored at one key slot for one record: either a single
// scalar value or a list retaining each element's original array index.
type Entry struct {
	Single *IndexValue
	Array  []IndexValue
}

// IsEmpty reports whether the entry holds nothing extractable.
func (e Entry) IsEmpty() bool {
	return e.Single == nil && len(e.Array) == 0
}

// Record is one indexed record: either a bare normalized string, or a set
// of per-key slot entries for an object/array record.
type Record struct {
	I int // dense record index

	// String holds the normalized value when the source record was itself
	// a plain string (spec.md §4.5 "Record is a string").
	String *IndexValue

	// Slots holds one Entry per key in the owning Store's key list, for
	// object/array records. nil when String is set.
	Slots []Entry
}

// Index holds the built record set plus the key store and options it was
// built against, and supports dense add/remove.
type Index struct {
	keys        *keystore.Store
	fieldNorm   *fieldnorm.Normalizer
	caseSens    bool
	ignoreDia   bool
	records     []Record
}

// New builds an empty Index bound to the given keys and normalization
// options.
func New(keys *keystore.Store, fn *fieldnorm.Normalizer, caseSensitive, ignoreDiacritics bool) *Index {
	return &Index{
		keys:      keys,
		fieldNorm: fn,
		caseSens:  caseSensitive,
		ignoreDia: ignoreDiacritics,
	}
}

// Records returns all indexed records, in dense order.
func (idx *Index) Records() []Record { return idx.records }

// Len returns the number of indexed records.
func (idx *Index) Len() int { return len(idx.records) }

// LoadRecords replaces the index's contents with pre-built records,
// bypassing extraction entirely. Used to rehydrate a snapshot (spec.md
// §6), where the records are already extracted and normalized.
func (idx *Index) LoadRecords(records []Record) {
	idx.records = records
}

// Build indexes every record in raw, replacing any existing contents.
func (idx *Index) Build(raw []any) {
	idx.records = idx.records[:0]
	for _, r := range raw {
		idx.Add(r)
	}
}

// Add indexes one record and appends it, assigning it the next dense index.
func (idx *Index) Add(raw any) {
	i := len(idx.records)

	if s, ok := raw.(string); ok {
		if s == "" {
			idx.records = append(idx.records, Record{I: i})
			return
		}
		idx.records = append(idx.records, Record{
			I:      i,
			String: &IndexValue{V: idx.normalize(s), N: idx.fieldNorm.Get(s)},
		})
		return
	}

	keys := idx.keys.Keys()
	slots := make([]Entry, len(keys))
	for k, key := range keys {
		slots[k] = idx.extractEntry(raw, key)
	}
	idx.records = append(idx.records, Record{I: i, Slots: slots})
}

// RemoveAt deletes the record at dense index i and re-densifies every
// record after it, per spec.md §4.5.
func (idx *Index) RemoveAt(i int) {
	if i < 0 || i >= len(idx.records) {
		return
	}
	idx.records = append(idx.records[:i], idx.records[i+1:]...)
	for j := i; j < len(idx.records); j++ {
		idx.records[j].I = j
	}
}

func (idx *Index) extractEntry(raw any, key keystore.Key) Entry {
	if key.GetFn != nil {
		s, ok := key.GetFn(raw)
		if !ok || s == "" {
			return Entry{}
		}
		return Entry{Single: &IndexValue{V: idx.normalize(s), N: idx.fieldNorm.Get(s)}}
	}

	res := pathext.Extract(raw, key.Path)
	switch res.Kind {
	case pathext.Single:
		if res.Single == "" {
			return Entry{}
		}
		return Entry{Single: &IndexValue{V: idx.normalize(res.Single), N: idx.fieldNorm.Get(res.Single)}}
	case pathext.Array:
		values := make([]IndexValue, 0, len(res.Array))
		for _, item := range res.Array {
			if item.Value == "" {
				continue
			}
			index := item.Index
			values = append(values, IndexValue{
				V: idx.normalize(item.Value),
				N: idx.fieldNorm.Get(item.Value),
				I: &index,
			})
		}
		if len(values) == 0 {
			return Entry{}
		}
		return Entry{Array: values}
	default:
		return Entry{}
	}
}

func (idx *Index) normalize(s string) string {
	return normalize.Normalize(s, idx.caseSens, idx.ignoreDia)
}
