// Package keystore normalizes caller-supplied key specs into a stable,
// weight-normalized list of search keys (spec.md §4.4).
package keystore

import (
	"github.com/kdessy/fuzzdex/pkg/types"
)

// Key is one resolved, weight-normalized search key.
type Key struct {
	Path   []string
	ID     string
	Weight float64
	GetFn  types.GetterFunc
}

// Store holds a KeyStore's keys plus an id→Key lookup.
type Store struct {
	keys   []Key
	byID   map[string]int
}

// New builds a Store from caller key specs, validating weights and
// normalizing them to sum to 1 (or leaving them untouched if the total is
// zero, per spec.md §4.4).
func New(specs []types.KeySpec) (*Store, error) {
	keys := make([]Key, 0, len(specs))
	total := 0.0

	for _, spec := range specs {
		if len(spec.Path) == 0 {
			return nil, types.NewMissingKeyProperty("name")
		}
		id := types.JoinPath(spec.Path)

		weight := spec.Weight
		if weight == 0 {
			weight = 1
		}
		if weight <= 0 {
			return nil, types.NewInvalidKeyWeightValue(id)
		}

		keys = append(keys, Key{
			Path:   append([]string(nil), spec.Path...),
			ID:     id,
			Weight: weight,
			GetFn:  spec.GetFn,
		})
		total += weight
	}

	if total > 0 {
		for i := range keys {
			keys[i].Weight /= total
		}
	}

	byID := make(map[string]int, len(keys))
	for i, k := range keys {
		byID[k.ID] = i
	}

	return &Store{keys: keys, byID: byID}, nil
}

// Keys returns all resolved keys, in input order.
func (s *Store) Keys() []Key {
	return s.keys
}

// Get looks up a key by its dotted id.
func (s *Store) Get(id string) (Key, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Key{}, false
	}
	return s.keys[i], true
}

// Slot returns a key's position in the Keys() slice.
func (s *Store) Slot(id string) (int, bool) {
	i, ok := s.byID[id]
	return i, ok
}

// Len returns the number of keys.
func (s *Store) Len() int { return len(s.keys) }
