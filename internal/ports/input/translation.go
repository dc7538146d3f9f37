package input

import (
	"context"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

type TranslationUseCase interface {
	Resolve(ctx context.Context, key string, lang domain.Language) string
	Dictionary(ctx context.Context, lang domain.Language) map[string]string
	Upsert(ctx context.Context, entry *entities.TranslationEntry) error
}

type AssistUseCase interface {
	Translate(ctx context.Context, sessionID, text string, source, target domain.Language) (string, error)
}
