package output

import (
	"context"

	"nordweb/internal/domain"
)

// StaticTranslations is the compiled-in fallback table for UI strings.
type StaticTranslations interface {
	// Lookup returns the text for key in lang only; it does not fall back
	// to another language.
	Lookup(lang domain.Language, key string) (string, bool)
	// Keys lists every key that has a text in lang.
	Keys(lang domain.Language) []string
}

// MachineTranslator translates free text through an external service.
type MachineTranslator interface {
	Translate(ctx context.Context, text string, source, target domain.Language) (string, error)
}

// MarkdownRenderer turns authored Markdown into sanitized HTML.
type MarkdownRenderer interface {
	Render(source string) (string, error)
}
