package bitap

import (
	"math"

	"github.com/kdessy/fuzzdex/pkg/types"
)

// Alphabet maps each rune in a pattern to a bitmask of the positions (from
// the most significant bit down) at which it occurs, per spec.md §4.6.
type Alphabet map[rune]uint32

// BuildAlphabet constructs the pattern alphabet used by Search.
func BuildAlphabet(pattern []rune) Alphabet {
	alphabet := make(Alphabet, len(pattern))
	m := len(pattern)
	for i, r := range pattern {
		alphabet[r] |= 1 << uint(m-i-1)
	}
	return alphabet
}

// Options configures a single Search call.
type Options struct {
	Location           int
	Threshold          float64
	Distance           int
	FindAllMatches     bool
	IgnoreLocation     bool
	IncludeMatches     bool
	MinMatchCharLength int
}

// Result is the outcome of one bitap Search.
type Result struct {
	IsMatch bool
	Score   float64
	Indices [][2]int
}

// Search runs the bitap fuzzy match of pattern against text, per spec.md
// §4.6. text and pattern must already be normalized by the caller (case
// folding / diacritic stripping happens upstream, in internal/normalize).
func Search(text, pattern []rune, alphabet Alphabet, opts Options) (Result, error) {
	m := len(pattern)
	if m > MaxBits {
		return Result{}, types.NewPatternLengthTooLarge(MaxBits)
	}

	textLen := len(text)
	expectedLocation := opts.Location
	if expectedLocation < 0 {
		expectedLocation = 0
	}
	if expectedLocation > textLen {
		expectedLocation = textLen
	}

	currentThreshold := opts.Threshold
	bestLocation := expectedLocation

	computeMatches := opts.IncludeMatches
	var matchMask []int
	if computeMatches {
		matchMask = make([]int, textLen)
	}

	// Exact-prefix fast path: repeatedly locate an exact substring match of
	// the whole pattern, tightening currentThreshold/bestLocation before the
	// main error-class sweep runs. See doc.go for how this interacts with
	// FindAllMatches.
	if m > 0 {
		for {
			idx := indexOf(text, pattern, bestLocation)
			if idx < 0 {
				break
			}
			score := computeScore(0, idx, expectedLocation, m, opts.Distance, opts.IgnoreLocation)
			if score < currentThreshold {
				currentThreshold = score
			}
			bestLocation = idx + m
			if computeMatches {
				for i := 0; i < m; i++ {
					matchMask[idx+i] = 1
				}
			}
		}
	}

	bestLocation = -1
	var lastBitArr []uint32
	finalScore := 1.0
	binMax := m + textLen
	var mask uint32
	if m > 0 {
		mask = 1 << uint(m-1)
	}

	for e := 0; e < m; e++ {
		binMin := 0
		binMid := binMax

		for binMin < binMid {
			score := computeScore(e, expectedLocation+binMid, expectedLocation, m, opts.Distance, opts.IgnoreLocation)
			if score <= currentThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := max(1, expectedLocation-binMid+1)
		var finish int
		if opts.FindAllMatches {
			finish = textLen
		} else {
			finish = min(expectedLocation+binMid, textLen) + m
		}

		bitArr := make([]uint32, finish+2)
		bitArr[finish+1] = (1 << uint(e)) - 1

		for j := finish; j >= start; j-- {
			currentLocation := j - 1
			var charMatch uint32
			if currentLocation >= 0 && currentLocation < textLen {
				charMatch = alphabet[text[currentLocation]]
			}

			if computeMatches && currentLocation >= 0 && currentLocation < textLen {
				if charMatch != 0 {
					matchMask[currentLocation] = 1
				}
			}

			bitArr[j] = ((bitArr[j+1] << 1) | 1) & charMatch

			if e != 0 {
				bitArr[j] |= ((lastBitArr[j+1] | lastBitArr[j]) << 1) | 1 | lastBitArr[j+1]
			}

			if bitArr[j]&mask != 0 {
				finalScore = computeScore(e, currentLocation, expectedLocation, m, opts.Distance, opts.IgnoreLocation)
				if finalScore <= currentThreshold {
					currentThreshold = finalScore
					bestLocation = currentLocation
					if bestLocation <= expectedLocation {
						break
					}
					start = max(1, 2*expectedLocation-bestLocation)
				}
			}
		}

		if computeScore(e+1, expectedLocation, expectedLocation, m, opts.Distance, opts.IgnoreLocation) > currentThreshold {
			break
		}
		lastBitArr = bitArr
	}

	result := Result{
		IsMatch: bestLocation >= 0,
		Score:   math.Max(finalScore, 0.001),
	}

	if computeMatches {
		indices := convertMaskToIndices(matchMask, opts.MinMatchCharLength)
		if len(indices) == 0 {
			result.IsMatch = false
		} else {
			result.Indices = indices
		}
	}

	return result, nil
}

func computeScore(errors, currentLocation, expectedLocation, patternLen, distance int, ignoreLocation bool) float64 {
	accuracy := float64(errors) / float64(patternLen)
	if ignoreLocation {
		return accuracy
	}

	proximity := currentLocation - expectedLocation
	if proximity < 0 {
		proximity = -proximity
	}

	if distance == 0 {
		if proximity != 0 {
			return 1.0
		}
		return accuracy
	}

	return accuracy + float64(proximity)/float64(distance)
}

// convertMaskToIndices collapses a per-character match mask into
// [start, end] index runs, dropping any run shorter than minMatchCharLength.
func convertMaskToIndices(matchMask []int, minMatchCharLength int) [][2]int {
	if minMatchCharLength < 1 {
		minMatchCharLength = 1
	}

	var indices [][2]int
	start := -1
	for i := 0; i <= len(matchMask); i++ {
		matched := i < len(matchMask) && matchMask[i] != 0
		if matched && start < 0 {
			start = i
		} else if !matched && start >= 0 {
			end := i - 1
			if end-start+1 >= minMatchCharLength {
				indices = append(indices, [2]int{start, end})
			}
			start = -1
		}
	}
	return indices
}

func indexOf(text, pattern []rune, from int) int {
	if from < 0 {
		from = 0
	}
	n, m := len(text), len(pattern)
	if m == 0 {
		return -1
	}
	for i := from; i+m <= n; i++ {
		if runesEqual(text[i:i+m], pattern) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

