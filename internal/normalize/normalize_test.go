package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCaseFolding(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("Hello World", false, false))
	assert.Equal(t, "Hello World", Normalize("Hello World", true, false))
}

func TestNormalizeDiacritics(t *testing.T) {
	assert.Equal(t, "resume", Normalize("résumé", false, true))
	assert.Equal(t, "Resume", Normalize("Résumé", true, true))
}

func TestNormalizeComposesLowercaseThenStrip(t *testing.T) {
	assert.Equal(t, "cafe au lait", Normalize("CAFÉ AU LAIT", false, true))
}

func TestNormalizeLeavesPlainTextUnaffected(t *testing.T) {
	assert.Equal(t, "plain text", Normalize("plain text", false, true))
}

func TestStripDiacriticsIdempotent(t *testing.T) {
	once := StripDiacritics("château")
	twice := StripDiacritics(once)
	assert.Equal(t, once, twice)
}
