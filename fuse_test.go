package fuzzdex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type book struct {
	Title  string `json:"title"`
	Author struct {
		Name string `json:"name"`
	} `json:"author"`
}

func newBook(title, author string) book {
	b := book{Title: title}
	b.Author.Name = author
	return b
}

func TestSearchFuzzyMatchesAcrossKeys(t *testing.T) {
	books := []book{
		newBook("Old Man's War", "John Scalzi"),
		newBook("The Lock Artist", "Steve Hamilton"),
		newBook("HTML5", "Remy Sharp"),
	}
	opts := DefaultOptions()
	opts.Keys = []KeySpec{Key("title"), KeyPath("author", "name")}

	f, err := New(books, opts, nil)
	require.NoError(t, err)

	results, err := f.Search("hamlet")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "The Lock Artist", results[0].Item.Title)
}

func TestSearchDefaultCaseInsensitivityAppliesToThePattern(t *testing.T) {
	books := []book{
		newBook("Old Man's War", "John Scalzi"),
		newBook("The Lock Artist", "Steve Hamilton"),
	}
	opts := DefaultOptions()
	opts.Keys = []KeySpec{Key("title"), KeyPath("author", "name")}

	f, err := New(books, opts, nil)
	require.NoError(t, err)

	results, err := f.Search("Hamlet")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "The Lock Artist", results[0].Item.Title)
}

func TestSearchIncludesScoreAndMatchesWhenRequested(t *testing.T) {
	books := []book{newBook("Old Man's War", "John Scalzi")}
	opts := DefaultOptions()
	opts.Keys = []KeySpec{Key("title")}
	opts.IncludeScore = true
	opts.IncludeMatches = true

	f, err := New(books, opts, nil)
	require.NoError(t, err)

	results, err := f.Search("old man")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Score)
	assert.Less(t, *results[0].Score, 0.5)
	require.NotEmpty(t, results[0].Matches)
	assert.Equal(t, "title", results[0].Matches[0].Key)
}

func TestSearchRequiresAllKeysToMatchByDefault(t *testing.T) {
	books := []book{newBook("Old Man's War", "John Scalzi")}
	opts := DefaultOptions()
	opts.Keys = []KeySpec{Key("title"), KeyPath("author", "name")}
	opts.Threshold = 0.3

	f, err := New(books, opts, nil)
	require.NoError(t, err)

	results, err := f.Search("xxxxxxxxxxxxx")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchDefaultSortIsAscendingByScore(t *testing.T) {
	books := []book{newBook("wrold", "a"), newBook("world", "b")}
	opts := DefaultOptions()
	opts.Keys = []KeySpec{Key("title")}
	opts.IncludeScore = true

	f, err := New(books, opts, nil)
	require.NoError(t, err)

	results, err := f.Search("world")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "world", results[0].Item.Title)
	assert.GreaterOrEqual(t, *results[1].Score, *results[0].Score)
}

func TestAddAndRemoveAtKeepIndexConsistent(t *testing.T) {
	books := []book{newBook("A", "x"), newBook("B", "y")}
	opts := DefaultOptions()
	opts.Keys = []KeySpec{Key("title")}

	f, err := New(books, opts, nil)
	require.NoError(t, err)
	f.Add(newBook("World", "z"))
	assert.Equal(t, 3, f.Len())

	f.RemoveAt(0)
	assert.Equal(t, 2, f.Len())

	results, err := f.Search("world")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "World", results[0].Item.Title)
}

func TestSearchOnPlainStringRecords(t *testing.T) {
	f, err := New([]string{"hello", "world", "goodbye"}, DefaultOptions(), nil)
	require.NoError(t, err)

	results, err := f.Search("wrold")
	require.NoError(t, err)
	// "world" is two errors away (score 0.4); "goodbye" starts with a
	// three-error match at location 0, which scores exactly the default
	// threshold of 0.6 and is admitted too.
	require.Len(t, results, 2)
	assert.Equal(t, "world", results[0].Item)
	assert.Equal(t, "goodbye", results[1].Item)
}

func TestSearchUsesExtendedSyntaxWhenEnabled(t *testing.T) {
	books := []book{newBook("corelib.go", "x"), newBook("corelib.rs", "y")}
	opts := DefaultOptions()
	opts.Keys = []KeySpec{Key("title")}
	opts.UseExtendedSearch = true

	f, err := New(books, opts, nil)
	require.NoError(t, err)

	results, err := f.Search("^corelib.go")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "corelib.go", results[0].Item.Title)
}

func TestSearchLogicalRequiresBothLeavesInAnd(t *testing.T) {
	books := []book{
		newBook("Old Man's War", "John Scalzi"),
		newBook("Old Man's War", "Someone Else"),
	}
	opts := DefaultOptions()
	opts.Keys = []KeySpec{Key("title"), KeyPath("author", "name")}
	opts.Threshold = 0.3

	f, err := New(books, opts, nil)
	require.NoError(t, err)

	q, err := CompileLogicalQuery(map[string]any{"title": "old man", "author.name": "scalzi"})
	require.NoError(t, err)

	results, err := f.SearchLogical(q)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "John Scalzi", results[0].Item.Author.Name)
}

func TestSearchLogicalOrAdmitsEitherBranch(t *testing.T) {
	books := []book{
		newBook("Old Man's War", "John Scalzi"),
		newBook("The Lock Artist", "Steve Hamilton"),
	}
	opts := DefaultOptions()
	opts.Keys = []KeySpec{Key("title")}
	opts.Threshold = 0.3

	f, err := New(books, opts, nil)
	require.NoError(t, err)

	q, err := CompileLogicalQuery(map[string]any{
		"$or": []any{
			map[string]any{"title": "old man"},
			map[string]any{"title": "lock artist"},
		},
	})
	require.NoError(t, err)

	results, err := f.SearchLogical(q)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
