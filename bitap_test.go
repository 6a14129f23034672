package fuzzdex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitapSearchEndToEndScenarios(t *testing.T) {
	opts := DefaultOptions()

	res, err := NewBitapSearch("world", opts).SearchIn("hello world")
	require.NoError(t, err)
	assert.True(t, res.IsMatch)
	assert.Less(t, res.Score, 0.1)

	res, err = NewBitapSearch("xyz", opts).SearchIn("hello world")
	require.NoError(t, err)
	assert.False(t, res.IsMatch)

	res, err = NewBitapSearch("helo wrld", opts).SearchIn("hello world")
	require.NoError(t, err)
	assert.True(t, res.IsMatch)

	tightened := opts
	tightened.Threshold = 0.2
	res, err = NewBitapSearch("helo wrld", tightened).SearchIn("hello world")
	require.NoError(t, err)
	assert.False(t, res.IsMatch)
}

func TestBitapSearchDefaultOptionsFoldCaseOnPatternAndText(t *testing.T) {
	opts := DefaultOptions()

	res, err := NewBitapSearch("WORLD", opts).SearchIn("hello world")
	require.NoError(t, err)
	assert.True(t, res.IsMatch)

	res, err = NewBitapSearch("world", opts).SearchIn("HELLO WORLD")
	require.NoError(t, err)
	assert.True(t, res.IsMatch)
}

func TestBitapSearchLongPatternIsChunkedNotRejected(t *testing.T) {
	longPattern := make([]rune, 40)
	for i := range longPattern {
		longPattern[i] = 'a'
	}
	_, err := NewBitapSearch(string(longPattern), DefaultOptions()).SearchIn("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err) // chunked: a 40-rune pattern is split, not rejected
}
