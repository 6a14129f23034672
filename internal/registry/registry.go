// Package registry implements searcher dispatch (spec.md §4.11): a
// process-wide, insertion-ordered registry mapping a predicate over
// (pattern, options) to the constructor of the Searcher that should handle
// it.
package registry

import (
	"reflect"
	"sync"

	"github.com/kdessy/fuzzdex/internal/bitap"
	"github.com/kdessy/fuzzdex/internal/extended"
	"github.com/kdessy/fuzzdex/internal/normalize"
	"github.com/kdessy/fuzzdex/pkg/types"
)

// Searcher runs a compiled pattern against normalized text.
type Searcher interface {
	Search(text []rune) (Result, error)
}

// Result is a searcher's outcome, independent of which kernel produced it.
type Result struct {
	IsMatch bool
	Score   float64
	Indices [][2]int
}

// Condition decides whether a Constructor should handle a given
// (pattern, options) pair.
type Condition func(pattern string, opts types.Options) bool

// Constructor builds the Searcher for a pattern once its Condition has
// matched.
type Constructor func(pattern string, opts types.Options) (Searcher, error)

type entry struct {
	cond Condition
	ctor Constructor
}

// Registry holds predicate→constructor pairs and dispatches a
// (pattern, options) pair to the first matching one, in insertion order.
// It is an explicit value rather than bare package state (spec.md §9), so
// callers can build isolated registries for testing; Default returns the
// ambient, process-wide instance most callers want.
type Registry struct {
	mu      sync.Mutex
	entries []entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a (condition, constructor) pair. Registration is
// idempotent by identity: registering the exact same function values
// twice is a no-op.
func (r *Registry) Register(cond Condition, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if sameFunc(e.cond, cond) && sameFunc(e.ctor, ctor) {
			return
		}
	}
	r.entries = append(r.entries, entry{cond: cond, ctor: ctor})
}

// Build dispatches to the first registered constructor whose condition
// matches.
func (r *Registry) Build(pattern string, opts types.Options) (Searcher, error) {
	r.mu.Lock()
	entries := append([]entry(nil), r.entries...)
	r.mu.Unlock()

	for _, e := range entries {
		if e.cond(pattern, opts) {
			return e.ctor(pattern, opts)
		}
	}
	return nil, types.NewExtendedSearchUnavailable()
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the ambient, process-wide registry, initialized once
// with the standard extended/bitap dispatch rule (spec.md §4.11).
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
		RegisterDefaults(defaultReg)
	})
	return defaultReg
}

// RegisterDefaults installs the standard dispatch rule: extended search
// when UseExtendedSearch is set, bitap chunking otherwise.
func RegisterDefaults(r *Registry) {
	r.Register(
		func(_ string, opts types.Options) bool { return opts.UseExtendedSearch },
		newExtendedSearcher,
	)
	r.Register(
		func(_ string, _ types.Options) bool { return true },
		newBitapSearcher,
	)
}

type extendedSearcher struct {
	groups [][]extended.Matcher
	opts   bitap.Options
}

func newExtendedSearcher(pattern string, opts types.Options) (Searcher, error) {
	groups := extended.ParseQuery(pattern, opts.IsCaseSensitive, opts.IgnoreDiacritics)
	return extendedSearcher{groups: groups, opts: toBitapOptions(opts)}, nil
}

func (s extendedSearcher) Search(text []rune) (Result, error) {
	res, err := extended.RunGroups(s.groups, text, s.opts)
	if err != nil {
		return Result{}, err
	}
	return Result{IsMatch: res.IsMatch, Score: res.Score, Indices: res.Indices}, nil
}

type bitapSearcher struct {
	chunks []bitap.Chunk
	opts   bitap.Options
}

func newBitapSearcher(pattern string, opts types.Options) (Searcher, error) {
	pat := []rune(normalize.Normalize(pattern, opts.IsCaseSensitive, opts.IgnoreDiacritics))
	return bitapSearcher{chunks: bitap.ChunkPattern(pat), opts: toBitapOptions(opts)}, nil
}

func (s bitapSearcher) Search(text []rune) (Result, error) {
	res, err := bitap.SearchChunked(text, s.chunks, s.opts)
	if err != nil {
		return Result{}, err
	}
	return Result{IsMatch: res.IsMatch, Score: res.Score, Indices: res.Indices}, nil
}

func toBitapOptions(opts types.Options) bitap.Options {
	return bitap.Options{
		Location:           opts.Location,
		Threshold:          opts.Threshold,
		Distance:           opts.Distance,
		FindAllMatches:     opts.FindAllMatches,
		IgnoreLocation:     opts.IgnoreLocation,
		IncludeMatches:     opts.IncludeMatches,
		MinMatchCharLength: opts.MinMatchCharLength,
	}
}

// sameFunc compares two func values by identity (entry point address), the
// only meaningful notion of equality Go allows for funcs.
func sameFunc(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
