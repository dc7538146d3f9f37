package input

import (
	"context"

	"nordweb/internal/application"
	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

type ContentUseCase interface {
	ListSection(ctx context.Context, section string, lang domain.Language) ([]application.LocalizedBlock, error)
	Block(ctx context.Context, section, key string, lang domain.Language) (*application.LocalizedBlock, error)
	UpsertBlock(ctx context.Context, block *entities.ContentBlock) error
}

type SettingsUseCase interface {
	All(ctx context.Context) (entities.SiteSettings, error)
	Set(ctx context.Context, key, value string) error
}

type NewsletterUseCase interface {
	Subscribe(ctx context.Context, email string, lang domain.Language) error
}
