package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two languages the site is authored in.
type Language string

const (
	English Language = "en"
	Danish  Language = "da"
)

// DefaultLanguage is served when nothing else matches.
const DefaultLanguage = English

// Languages lists the supported languages, default first.
var Languages = []Language{English, Danish}

var languageMatcher = language.NewMatcher([]language.Tag{language.English, language.Danish})

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l == Danish {
		return language.Danish
	}
	return language.English
}

func (l Language) String() string { return string(l) }

// ParseLanguage accepts "en", "da" and regional variants such as "da-DK".
func ParseLanguage(value string) (Language, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrUnsupportedLanguage
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", ErrUnsupportedLanguage
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, nil
	case "da":
		return Danish, nil
	}
	return "", ErrUnsupportedLanguage
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value.
func MatchAcceptLanguage(header string) Language {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return Languages[idx]
}

// Localized is a pair of English and Danish strings.
type Localized struct {
	EN string `json:"en"`
	DA string `json:"da"`
}

// In returns the text for lang. An empty Danish value falls back to English.
func (l Localized) In(lang Language) string {
	if lang == Danish && l.DA != "" {
		return l.DA
	}
	return l.EN
}
