package httpapi

import (
	"go.uber.org/zap"

	"nordweb/internal/domain"
	"nordweb/internal/ports/input"
)

// Handler serves the JSON API using use cases.
type Handler struct {
	translations input.TranslationUseCase
	assist       input.AssistUseCase
	catalog      input.CatalogUseCase
	compare      input.CompareUseCase
	content      input.ContentUseCase
	settings     input.SettingsUseCase
	newsletter   input.NewsletterUseCase

	adminToken  string
	defaultLang domain.Language
	log         *zap.Logger
}

// Deps groups the use cases the handler needs.
type Deps struct {
	Translations input.TranslationUseCase
	Assist       input.AssistUseCase
	Catalog      input.CatalogUseCase
	Compare      input.CompareUseCase
	Content      input.ContentUseCase
	Settings     input.SettingsUseCase
	Newsletter   input.NewsletterUseCase
}

// NewHandler creates a Handler.
func NewHandler(deps Deps, adminToken string, defaultLang domain.Language, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if defaultLang == "" {
		defaultLang = domain.DefaultLanguage
	}
	return &Handler{
		translations: deps.Translations,
		assist:       deps.Assist,
		catalog:      deps.Catalog,
		compare:      deps.Compare,
		content:      deps.Content,
		settings:     deps.Settings,
		newsletter:   deps.Newsletter,
		adminToken:   adminToken,
		defaultLang:  defaultLang,
		log:          log,
	}
}
