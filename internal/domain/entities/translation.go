package entities

import (
	"time"

	"nordweb/internal/domain"
)

// TranslationEntry is a database-backed UI string.
type TranslationEntry struct {
	Key       string
	ValueEN   string
	ValueDA   string
	UpdatedAt time.Time
}

// Value returns the entry's text for lang, or "" when it has none.
func (t TranslationEntry) Value(lang domain.Language) string {
	if lang == domain.Danish {
		return t.ValueDA
	}
	return t.ValueEN
}
