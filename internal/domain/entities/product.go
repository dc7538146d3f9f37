package entities

import (
	"time"

	"nordweb/internal/domain"
)

// ProductCategory groups products in the catalog.
type ProductCategory struct {
	ID        int64
	Slug      string
	Name      domain.Localized
	SortOrder int
}

// Product is a catalog entry. Price is the canonical EUR amount.
type Product struct {
	ID           int64
	Slug         string
	CategoryID   int64
	CategorySlug string
	Name         domain.Localized
	Description  domain.Localized
	Images       []string
	Specs        map[string]string
	Price        float64
	Active       bool
	SortOrder    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
