package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("da-DK")
	require.NoError(t, err)
	assert.Equal(t, Danish, l)

	l, err = ParseLanguage("EN")
	require.NoError(t, err)
	assert.Equal(t, English, l)

	for _, bad := range []string{"", "de", "not a tag!"} {
		_, err := ParseLanguage(bad)
		assert.ErrorIs(t, err, ErrUnsupportedLanguage, bad)
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	assert.Equal(t, Danish, MatchAcceptLanguage("da-DK,da;q=0.9,en;q=0.8"))
	assert.Equal(t, English, MatchAcceptLanguage("en-GB,en;q=0.9"))
	assert.Equal(t, English, MatchAcceptLanguage("fr-FR"))
	assert.Equal(t, English, MatchAcceptLanguage(";;;"))
}

func TestLocalizedFallsBackToEnglish(t *testing.T) {
	l := Localized{EN: "Chair", DA: "Stol"}
	assert.Equal(t, "Stol", l.In(Danish))
	assert.Equal(t, "Chair", l.In(English))
	assert.Equal(t, "Table", Localized{EN: "Table"}.In(Danish))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "product_not_found", Code(fmt.Errorf("lookup: %w", ErrProductNotFound)))
	assert.Equal(t, "", Code(errors.New("boom")))
	assert.Equal(t, "", Code(nil))
}
