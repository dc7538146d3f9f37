package entities

import (
	"time"

	"nordweb/internal/domain"
)

// BlogPost is a journal entry. Body is Markdown.
type BlogPost struct {
	ID          int64
	Slug        string
	Category    string
	Title       domain.Localized
	Excerpt     domain.Localized
	Body        domain.Localized
	CoverImage  string
	Published   bool
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
