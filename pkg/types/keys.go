package types

import "strings"

// GetterFunc overrides path walking for a key, yielding a single string
// straight from the record's tree value.
type GetterFunc func(record any) (string, bool)

// KeySpec is a single key specification as accepted from a caller: a bare
// dotted path, an explicit path segment list, or an object with an
// optional weight and getter override (spec.md §4.4).
type KeySpec struct {
	// Path is the segment list this key resolves against a record tree.
	Path []string

	// Weight is the caller-declared weight (must be > 0). Zero means "not
	// set", which KeyStore treats as the default weight of 1.
	Weight float64

	// GetFn, if set, bypasses path resolution entirely.
	GetFn GetterFunc
}

// Key builds a KeySpec from a dotted path string, e.g. "author.name".
func Key(path string) KeySpec {
	return KeySpec{Path: SplitPath(path)}
}

// KeyPath builds a KeySpec from explicit path segments.
func KeyPath(segments ...string) KeySpec {
	return KeySpec{Path: append([]string(nil), segments...)}
}

// KeyWeighted builds a KeySpec from a dotted path with an explicit weight.
func KeyWeighted(path string, weight float64) KeySpec {
	return KeySpec{Path: SplitPath(path), Weight: weight}
}

// KeyFunc builds a KeySpec whose value comes from a getter function rather
// than path resolution. The path is still used to derive the key's id.
func KeyFunc(path string, fn GetterFunc) KeySpec {
	return KeySpec{Path: SplitPath(path), GetFn: fn}
}

// SplitPath splits a dotted path string into segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// JoinPath joins path segments into a dotted id string.
func JoinPath(segments []string) string {
	return strings.Join(segments, ".")
}
