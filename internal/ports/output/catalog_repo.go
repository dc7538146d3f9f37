package output

import (
	"context"

	"nordweb/internal/domain/entities"
)

// ListQuery selects one window of a filtered listing. An empty Category
// means no filter.
type ListQuery struct {
	Category string
	Offset   int
	Limit    int
}

type ProductRepository interface {
	ListCategories(ctx context.Context) ([]entities.ProductCategory, error)
	ListActive(ctx context.Context, q ListQuery) ([]entities.Product, error)
	CountActive(ctx context.Context, category string) (int, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]entities.Product, error)
}

type PostRepository interface {
	ListPublished(ctx context.Context, q ListQuery) ([]entities.BlogPost, error)
	CountPublished(ctx context.Context, category string) (int, error)
	FindBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
}
