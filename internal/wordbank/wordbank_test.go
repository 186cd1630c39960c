package wordbank

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	t.Parallel()

	names := ThemeNames()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Objects")
	assert.Contains(t, names, "Animals")
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	langs := Languages()
	assert.Contains(t, langs, LangEN)
	assert.Contains(t, langs, LangBG)
}

func TestWords_BothLanguages(t *testing.T) {
	t.Parallel()

	for _, theme := range ThemeNames() {
		for _, lang := range []string{LangEN, LangBG} {
			words := Words(theme, lang)
			assert.NotEmpty(t, words, "theme %q lang %q has no words", theme, lang)
		}
	}
}

func TestHas(t *testing.T) {
	t.Parallel()

	assert.True(t, Has("Movies", LangEN))
	assert.True(t, Has("Movies", LangBG))
	assert.False(t, Has("Movies", "fr"))
	assert.False(t, Has("Nope", LangEN))
}

func TestPick(t *testing.T) {
	t.Parallel()

	words := Words("Fruits", LangEN)
	require.NotEmpty(t, words)

	word := Pick("Fruits", LangEN)
	assert.Contains(t, words, word)

	assert.Empty(t, Pick("Nope", LangEN))
}
