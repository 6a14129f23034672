package fuzzdex

import "github.com/kdessy/fuzzdex/pkg/types"

// Options configures a Fuse (spec.md §6). It's a direct alias of
// pkg/types.Options, exported here so callers don't need to import the
// internal-looking pkg/types path for day-to-day use.
type Options = types.Options

// DefaultOptions returns the library's documented defaults.
func DefaultOptions() Options {
	return types.DefaultOptions()
}

// KeySpec is one declared search key (spec.md §4.4).
type KeySpec = types.KeySpec

// Key declares a search key from a dotted path, weight 1.
func Key(path string) KeySpec { return types.Key(path) }

// KeyPath declares a search key from explicit path segments, weight 1.
func KeyPath(segments ...string) KeySpec { return types.KeyPath(segments...) }

// KeyWeighted declares a search key from a dotted path with a custom
// weight.
func KeyWeighted(path string, weight float64) KeySpec { return types.KeyWeighted(path, weight) }

// KeyFunc declares a search key backed by a custom getter instead of path
// walking.
func KeyFunc(path string, fn types.GetterFunc) KeySpec { return types.KeyFunc(path, fn) }

// Match and FuseResult are re-exported for the same reason as Options.
type Match = types.Match
type FuseResult[T any] = types.FuseResult[T]
