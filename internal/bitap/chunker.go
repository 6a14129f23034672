// Pattern chunking for patterns longer than MaxBits, per spec.md §4.7.
package bitap

// Chunk is one fixed-width slice of an over-long pattern, with the offset
// into the original pattern (and therefore into Location) it represents.
type Chunk struct {
	Pattern  []rune
	Alphabet Alphabet
	Start    int
}

// ChunkPattern splits pattern into non-overlapping MaxBits-wide chunks
// starting at 0, MaxBits, 2*MaxBits, ..., plus (when the pattern length
// isn't a multiple of MaxBits) a final MaxBits-wide chunk ending exactly at
// the pattern's last rune, so the tail is never scored with a short,
// left-padded window.
func ChunkPattern(pattern []rune) []Chunk {
	n := len(pattern)
	if n <= MaxBits {
		return []Chunk{{Pattern: pattern, Alphabet: BuildAlphabet(pattern), Start: 0}}
	}

	remainder := n % MaxBits
	end := n - remainder

	chunks := make([]Chunk, 0, end/MaxBits+1)
	for i := 0; i < end; i += MaxBits {
		p := pattern[i : i+MaxBits]
		chunks = append(chunks, Chunk{Pattern: p, Alphabet: BuildAlphabet(p), Start: i})
	}
	if remainder > 0 {
		start := n - MaxBits
		p := pattern[start:]
		chunks = append(chunks, Chunk{Pattern: p, Alphabet: BuildAlphabet(p), Start: start})
	}
	return chunks
}

// SearchChunked runs Search once per chunk of an over-long pattern and
// aggregates the results per spec.md §4.7: the outer score is the
// arithmetic mean of every chunk's score, isMatch is true if any chunk
// matched, and indices are the concatenation of the matching chunks' index
// runs (each chunk's indices are already expressed in text-relative
// coordinates, so no shift is needed here).
func SearchChunked(text []rune, chunks []Chunk, opts Options) (Result, error) {
	if len(chunks) == 0 {
		return Result{IsMatch: false, Score: 1}, nil
	}

	baseLocation := opts.Location
	var totalScore float64
	isMatch := false
	var indices [][2]int

	for _, c := range chunks {
		chunkOpts := opts
		chunkOpts.Location = baseLocation + c.Start

		res, err := Search(text, c.Pattern, c.Alphabet, chunkOpts)
		if err != nil {
			return Result{}, err
		}

		totalScore += res.Score
		if res.IsMatch {
			isMatch = true
			indices = append(indices, res.Indices...)
		}
	}

	return Result{
		IsMatch: isMatch,
		Score:   totalScore / float64(len(chunks)),
		Indices: indices,
	}, nil
}
