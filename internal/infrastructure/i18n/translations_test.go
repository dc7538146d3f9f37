package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nordweb/internal/domain"
)

func TestEmbeddedTablesHaveTheSameKeys(t *testing.T) {
	tr, err := NewTranslator(nil)
	require.NoError(t, err)

	en := tr.Keys(domain.English)
	require.NotEmpty(t, en)
	assert.Equal(t, en, tr.Keys(domain.Danish))

	v, ok := tr.Lookup(domain.Danish, "nav.home")
	require.True(t, ok)
	assert.Equal(t, "Forside", v)

	v, ok = tr.Lookup(domain.English, "catalog.page_of")
	require.True(t, ok)
	assert.Equal(t, "Page {page} of {total}", v)
}

func TestLookupIsStrictPerLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"active.en.toml": {Data: []byte(`"nav.home" = "Home"
"nav.shop" = "Shop"
`)},
		"active.da.toml": {Data: []byte(`"nav.home" = "Hjem"
`)},
	}
	tr, err := NewTranslatorFS(fsys, nil)
	require.NoError(t, err)

	v, ok := tr.Lookup(domain.English, "nav.shop")
	assert.True(t, ok)
	assert.Equal(t, "Shop", v)

	_, ok = tr.Lookup(domain.Danish, "nav.shop")
	assert.False(t, ok, "English text must not leak into Danish lookups")

	_, ok = tr.Lookup(domain.English, "nav.missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"nav.home", "nav.shop"}, tr.Keys(domain.English))
}

func TestMissingOptionalLanguageFile(t *testing.T) {
	fsys := fstest.MapFS{
		"active.en.toml": {Data: []byte(`"nav.home" = "Home"` + "\n")},
	}
	tr, err := NewTranslatorFS(fsys, nil)
	require.NoError(t, err)
	assert.Empty(t, tr.Keys(domain.Danish))

	_, err = NewTranslatorFS(fstest.MapFS{}, nil)
	assert.Error(t, err)
}
