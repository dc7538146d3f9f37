package input

import (
	"context"

	"nordweb/internal/application"
	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

type CatalogUseCase interface {
	ListCategories(ctx context.Context) ([]entities.ProductCategory, error)
	ListProducts(ctx context.Context, category string, page int) (entities.Page[entities.Product], error)
	ListPosts(ctx context.Context, category string, page int) (entities.Page[entities.BlogPost], error)
	GetProduct(ctx context.Context, slug string) (*entities.Product, error)
	GetPost(ctx context.Context, slug string, lang domain.Language) (*application.RenderedPost, error)
}

type CompareUseCase interface {
	NewSessionID() string
	IDs(sessionID string) []int64
	Products(ctx context.Context, sessionID string) ([]entities.Product, error)
	Add(ctx context.Context, sessionID string, productID int64) ([]int64, error)
	Remove(sessionID string, productID int64) []int64
	Clear(sessionID string)
}
