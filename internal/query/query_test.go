package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdessy/fuzzdex/pkg/types"
)

func TestCompileSingleKeyValueLeaf(t *testing.T) {
	expr, err := Compile(map[string]any{"title": "old man"})
	require.NoError(t, err)
	assert.Equal(t, Leaf{KeyID: "title", Pattern: "old man"}, expr)
}

func TestCompilePathValueLeaf(t *testing.T) {
	expr, err := Compile(map[string]any{
		"$path": []any{"author", "name"},
		"$val":  "scalzi",
	})
	require.NoError(t, err)
	assert.Equal(t, Leaf{KeyID: "author.name", Pattern: "scalzi"}, expr)
}

func TestCompileRewritesImplicitMultiKeyToAnd(t *testing.T) {
	expr, err := Compile(map[string]any{"title": "war", "author": "scalzi"})
	require.NoError(t, err)

	and, ok := expr.(And)
	require.True(t, ok)
	require.Len(t, and.Children, 2)
	assert.Equal(t, Leaf{KeyID: "author", Pattern: "scalzi"}, and.Children[0])
	assert.Equal(t, Leaf{KeyID: "title", Pattern: "war"}, and.Children[1])
}

func TestCompileExplicitAndOr(t *testing.T) {
	expr, err := Compile(map[string]any{
		"$or": []any{
			map[string]any{"title": "war"},
			map[string]any{"$and": []any{
				map[string]any{"title": "peace"},
				map[string]any{"author": "tolstoy"},
			}},
		},
	})
	require.NoError(t, err)

	or, ok := expr.(Or)
	require.True(t, ok)
	require.Len(t, or.Children, 2)
	_, ok = or.Children[1].(And)
	assert.True(t, ok)
}

func TestCompileRejectsMalformedPathValue(t *testing.T) {
	_, err := Compile(map[string]any{"$path": []any{"author"}})
	require.Error(t, err)
	fe, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.ErrKindInvalidLogicalQueryForKey, fe.Kind)
}

func TestCompileRejectsNonStringLeafValue(t *testing.T) {
	_, err := Compile(map[string]any{"title": 42})
	require.Error(t, err)
}

func TestCompileRejectsEmptyObject(t *testing.T) {
	_, err := Compile(map[string]any{})
	require.Error(t, err)
}

func TestConvertToExplicitIsIdempotent(t *testing.T) {
	node := map[string]any{"title": "war", "author": "scalzi"}
	once := ConvertToExplicit(node)
	twice := ConvertToExplicit(once)
	assert.Equal(t, once, twice)
}

func TestConvertToExplicitLeavesSingleKeyUnchanged(t *testing.T) {
	node := map[string]any{"title": "war"}
	assert.Equal(t, node, ConvertToExplicit(node))
}

func TestEvalAndRequiresAllChildren(t *testing.T) {
	expr, err := Compile(map[string]any{"title": "war", "author": "scalzi"})
	require.NoError(t, err)

	matches := map[string]bool{"title": true, "author": false}
	ok, _ := Eval(expr, func(leaf Leaf) (bool, float64) {
		return matches[leaf.KeyID], 0.1
	})
	assert.False(t, ok)

	matches["author"] = true
	ok, score := Eval(expr, func(leaf Leaf) (bool, float64) {
		return matches[leaf.KeyID], 0.2
	})
	assert.True(t, ok)
	assert.InDelta(t, 0.2, score, 1e-9)
}

func TestEvalOrShortCircuitsOnFirstMatch(t *testing.T) {
	expr, err := Compile(map[string]any{
		"$or": []any{
			map[string]any{"a": "x"},
			map[string]any{"b": "y"},
		},
	})
	require.NoError(t, err)

	called := map[string]bool{}
	ok, score := Eval(expr, func(leaf Leaf) (bool, float64) {
		called[leaf.KeyID] = true
		return leaf.KeyID == "a", 0.5
	})
	assert.True(t, ok)
	assert.InDelta(t, 0.5, score, 1e-9)
	assert.True(t, called["a"])
	assert.False(t, called["b"])
}
