package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"nordweb/internal/domain"
	"nordweb/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.StaticTranslations port.
var _ output.StaticTranslations = (*Translator)(nil)

// Translator is the static fallback table, a thin wrapper around go-i18n's
// Bundle/Localizer.
type Translator struct {
	bundle *i18n.Bundle
	keys   map[domain.Language]map[string]struct{}
}

// NewTranslator loads the embedded active.*.toml files.
func NewTranslator(log *zap.Logger) (*Translator, error) {
	return NewTranslatorFS(localeFS, log)
}

// NewTranslatorFS loads active.<lang>.toml for every supported language from
// fsys. The default language file is required; the others are optional.
func NewTranslatorFS(fsys fs.FS, log *zap.Logger) (*Translator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	bundle := i18n.NewBundle(domain.DefaultLanguage.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Translator{
		bundle: bundle,
		keys:   map[domain.Language]map[string]struct{}{},
	}
	for _, lang := range domain.Languages {
		file := fmt.Sprintf("active.%s.toml", lang)
		mf, err := bundle.LoadMessageFileFS(fsys, file)
		if err != nil {
			if lang == domain.DefaultLanguage {
				return nil, fmt.Errorf("i18n: load %s: %w", file, err)
			}
			log.Warn("i18n: failed to load message file", zap.String("file", file), zap.Error(err))
			continue
		}
		set := make(map[string]struct{}, len(mf.Messages))
		for _, m := range mf.Messages {
			set[m.ID] = struct{}{}
		}
		t.keys[lang] = set
	}
	return t, nil
}

// Lookup renders key in lang. Keys missing from lang's file are reported as
// not found instead of being served in the bundle's default language.
func (t *Translator) Lookup(lang domain.Language, key string) (string, bool) {
	if _, ok := t.keys[lang][key]; !ok {
		return "", false
	}
	localizer := i18n.NewLocalizer(t.bundle, lang.String())
	msg, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || !sameBase(tag, lang.Tag()) {
		return "", false
	}
	return msg, true
}

// Keys lists the keys defined for lang, sorted.
func (t *Translator) Keys(lang domain.Language) []string {
	set := t.keys[lang]
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sameBase(a, b language.Tag) bool {
	ab, _ := a.Base()
	bb, _ := b.Base()
	return ab == bb
}
