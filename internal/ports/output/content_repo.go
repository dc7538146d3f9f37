package output

import (
	"context"

	"nordweb/internal/domain/entities"
)

type ContentBlockRepository interface {
	ListBySection(ctx context.Context, section string, includeDrafts bool) ([]entities.ContentBlock, error)
	Upsert(ctx context.Context, block *entities.ContentBlock) error
}

type SettingsRepository interface {
	List(ctx context.Context) ([]entities.SiteSetting, error)
	Upsert(ctx context.Context, setting *entities.SiteSetting) error
}

type SubscriberRepository interface {
	// Create stores s unless the email is already subscribed. It reports
	// whether a new row was written.
	Create(ctx context.Context, s *entities.NewsletterSubscriber) (bool, error)
}
