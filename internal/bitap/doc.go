// Package bitap implements the bitap fuzzy-matching kernel (spec.md §4.6)
// and the pattern chunker that lets it handle patterns longer than the
// machine word width (spec.md §4.7).
//
// # Word width
//
// MaxBits is 32, the width spec.md §9 calls out as the value "existing
// records suggest". PatternLengthTooLarge always reports this value.
//
// # findAllMatches vs. the exact-prefix fast path
//
// spec.md §9 flags the interaction between FindAllMatches and the
// exact-prefix fast path as an open question: the fast path can advance
// bestLocation past expectedLocation+binMax, a region the main bitap sweep
// would not otherwise revisit. This implementation resolves it by treating
// the fast path purely as a lower bound on currentThreshold/bestLocation —
// the main sweep always runs its own window afterward (extending to the end
// of the text when FindAllMatches is set), so a fast-path hit can only tighten the
// threshold, never suppress a match the main pass would otherwise find.
//
// # Usage
//
//	alphabet := bitap.BuildAlphabet([]rune("world"))
//	result, err := bitap.Search([]rune("hello world"), []rune("world"), alphabet, bitap.Options{
//	    Threshold: 0.6,
//	    Distance:  100,
//	})
package bitap

// MaxBits is the bitap word width. Patterns (or pattern chunks) longer
// than this cannot be scored by a single Search call.
const MaxBits = 32
