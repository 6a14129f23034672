// Package fieldnorm implements the field-length normalization factor of
// spec.md §4.3: a cached function of token count that discounts long text
// fields when combining per-key scores.
package fieldnorm

import (
	"math"
	"strings"
	"sync"
)

// Mantissa is the fixed decimal precision normalization results are
// rounded to (spec.md §4.3: m = 3).
const Mantissa = 3

// Normalizer computes and caches n = round(w * 10^m) / 10^m where
// w = numTokens^(-0.5*weight). It is safe for concurrent read access; the
// cache is guarded by a mutex held only for the insert/lookup itself,
// matching the concurrency model in spec.md §5.
type Normalizer struct {
	weight float64
	scale  float64

	mu    sync.Mutex
	cache map[int]float64
}

// New builds a Normalizer for the given field-norm weight.
func New(weight float64) *Normalizer {
	return &Normalizer{
		weight: weight,
		scale:  math.Pow(10, Mantissa),
		cache:  make(map[int]float64),
	}
}

// Get returns the normalization factor for value, memoized by its token
// count (whitespace-separated, non-empty tokens).
func (n *Normalizer) Get(value string) float64 {
	count := tokenCount(value)

	n.mu.Lock()
	defer n.mu.Unlock()

	if v, ok := n.cache[count]; ok {
		return v
	}

	w := math.Pow(float64(count), -0.5*n.weight)
	v := math.Round(w*n.scale) / n.scale
	n.cache[count] = v
	return v
}

// Clear empties the memoization cache.
func (n *Normalizer) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cache = make(map[int]float64)
}

func tokenCount(s string) int {
	return len(strings.Fields(s))
}
