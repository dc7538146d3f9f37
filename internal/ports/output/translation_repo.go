package output

import (
	"context"

	"nordweb/internal/domain/entities"
)

type TranslationRepository interface {
	ListAll(ctx context.Context) ([]entities.TranslationEntry, error)
	Upsert(ctx context.Context, entry *entities.TranslationEntry) error
}
