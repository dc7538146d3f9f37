package entities

import (
	"time"

	"nordweb/internal/domain"
)

// NewsletterSubscriber is a stored newsletter sign-up.
type NewsletterSubscriber struct {
	ID        int64
	Email     string
	Language  domain.Language
	CreatedAt time.Time
}
