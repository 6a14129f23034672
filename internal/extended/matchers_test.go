package extended

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTokenExact(t *testing.T) {
	kind, lit := classifyToken(`=hello`)
	assert.Equal(t, KindExact, kind)
	assert.Equal(t, "hello", lit)

	kind, lit = classifyToken(`="hello world"`)
	assert.Equal(t, KindExact, kind)
	assert.Equal(t, "hello world", lit)
}

func TestClassifyTokenInclude(t *testing.T) {
	kind, lit := classifyToken(`'abc`)
	assert.Equal(t, KindInclude, kind)
	assert.Equal(t, "abc", lit)
}

func TestClassifyTokenPrefixAndInversePrefix(t *testing.T) {
	kind, lit := classifyToken(`^abc`)
	assert.Equal(t, KindPrefix, kind)
	assert.Equal(t, "abc", lit)

	kind, lit = classifyToken(`!^abc`)
	assert.Equal(t, KindInversePrefix, kind)
	assert.Equal(t, "abc", lit)
}

func TestClassifyTokenSuffixAndInverseSuffix(t *testing.T) {
	kind, lit := classifyToken(`abc$`)
	assert.Equal(t, KindSuffix, kind)
	assert.Equal(t, "abc", lit)

	kind, lit = classifyToken(`!abc$`)
	assert.Equal(t, KindInverseSuffix, kind)
	assert.Equal(t, "abc", lit)
}

func TestClassifyTokenInverseExact(t *testing.T) {
	kind, lit := classifyToken(`!abc`)
	assert.Equal(t, KindInverseExact, kind)
	assert.Equal(t, "abc", lit)
}

func TestClassifyTokenFuzzyIsDefault(t *testing.T) {
	kind, lit := classifyToken(`abc`)
	assert.Equal(t, KindFuzzy, kind)
	assert.Equal(t, "abc", lit)
}

func TestRunExact(t *testing.T) {
	res := runExact([]rune("hello"), []rune("hello"))
	assert.True(t, res.IsMatch)
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, [][2]int{{0, 4}}, res.Indices)

	res = runExact([]rune("hello world"), []rune("hello"))
	assert.False(t, res.IsMatch)
	assert.Equal(t, 1.0, res.Score)
}

func TestRunIncludeFindsAllOccurrences(t *testing.T) {
	res := runInclude([]rune("abcabc"), []rune("abc"))
	assert.True(t, res.IsMatch)
	assert.Equal(t, [][2]int{{0, 2}, {3, 5}}, res.Indices)
}

func TestRunIncludeDoesNotReportOverlappingOccurrences(t *testing.T) {
	res := runInclude([]rune("aaaa"), []rune("aa"))
	assert.True(t, res.IsMatch)
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, res.Indices)
}

func TestRunPrefixAndInversePrefix(t *testing.T) {
	p := runPrefix([]rune("hello world"), []rune("hello"))
	assert.True(t, p.IsMatch)

	ip := runInversePrefix([]rune("hello world"), []rune("hello"))
	assert.False(t, ip.IsMatch)

	ip2 := runInversePrefix([]rune("goodbye world"), []rune("hello"))
	assert.True(t, ip2.IsMatch)
}

func TestRunSuffixAndInverseSuffix(t *testing.T) {
	s := runSuffix([]rune("hello world"), []rune("world"))
	assert.True(t, s.IsMatch)
	assert.Equal(t, [][2]int{{6, 10}}, s.Indices)

	is := runInverseSuffix([]rune("hello world"), []rune("world"))
	assert.False(t, is.IsMatch)
}

func TestRunPrefixSuffixEmptyLiteralMatchesAnyText(t *testing.T) {
	p := runPrefix([]rune("hello"), []rune(""))
	assert.True(t, p.IsMatch)
	assert.Equal(t, [][2]int{{4, 4}}, p.Indices)

	s := runSuffix([]rune("hello"), []rune(""))
	assert.True(t, s.IsMatch)
	assert.Equal(t, [][2]int{{4, 4}}, s.Indices)

	empty := runPrefix(nil, []rune(""))
	assert.True(t, empty.IsMatch)
	assert.Equal(t, [][2]int{{0, 0}}, empty.Indices)
}

func TestRunInverseExact(t *testing.T) {
	res := runInverseExact([]rune("hello world"), []rune("xyz"))
	assert.True(t, res.IsMatch)

	res = runInverseExact([]rune("hello world"), []rune("world"))
	assert.False(t, res.IsMatch)
}
