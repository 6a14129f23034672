package fuzzdex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileLogicalQueryRewritesImplicitAnd(t *testing.T) {
	expr, err := CompileLogicalQuery(map[string]any{"title": "rust", "author": "smith"})
	require.NoError(t, err)

	leaves := map[string]bool{}
	collectLeaves(expr, func(l Leaf) { leaves[l.KeyID] = true })
	assert.True(t, leaves["title"])
	assert.True(t, leaves["author"])
}

func TestConvertToExplicitIdempotenceLaw(t *testing.T) {
	q := map[string]any{"title": "rust", "author": "smith"}
	once := ConvertToExplicit(q)
	twice := ConvertToExplicit(once)
	assert.Equal(t, once, twice)
}
