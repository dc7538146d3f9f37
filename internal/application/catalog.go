package application

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
	"nordweb/internal/ports/output"
)

const (
	ProductPageSize = 8
	PostPageSize    = 6

	// AllCategories is the category value that disables filtering.
	AllCategories = "all"
)

type CatalogService struct {
	products output.ProductRepository
	posts    output.PostRepository
	markdown output.MarkdownRenderer
}

func NewCatalogService(
	products output.ProductRepository,
	posts output.PostRepository,
	markdown output.MarkdownRenderer,
) *CatalogService {
	return &CatalogService{
		products: products,
		posts:    posts,
		markdown: markdown,
	}
}

// NormalizeCategory maps "", whitespace and "all" to the empty (unfiltered)
// category.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, AllCategories) {
		return ""
	}
	return category
}

// NormalizePage clamps page numbers below 1 to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]entities.ProductCategory, error) {
	return s.products.ListCategories(ctx)
}

// ListProducts returns one page of active products, ordered by sort order.
func (s *CatalogService) ListProducts(ctx context.Context, category string, page int) (entities.Page[entities.Product], error) {
	return listPage(ctx, category, page, ProductPageSize, s.products.CountActive, s.products.ListActive)
}

// ListPosts returns one page of published posts, newest first.
func (s *CatalogService) ListPosts(ctx context.Context, category string, page int) (entities.Page[entities.BlogPost], error) {
	return listPage(ctx, category, page, PostPageSize, s.posts.CountPublished, s.posts.ListPublished)
}

// listPage runs the count and the data query with the same filter.
func listPage[T any](
	ctx context.Context,
	category string,
	page, pageSize int,
	count func(context.Context, string) (int, error),
	list func(context.Context, output.ListQuery) ([]T, error),
) (entities.Page[T], error) {
	category = NormalizeCategory(category)
	page = NormalizePage(page)
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}

	var (
		total int
		items []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := count(gctx, category)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		rows, err := list(gctx, output.ListQuery{
			Category: category,
			Offset:   (page - 1) * pageSize,
			Limit:    pageSize,
		})
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}
		items = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return entities.Page[T]{}, err
	}
	return entities.NewPage(items, page, pageSize, total), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*entities.Product, error) {
	p, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// GetProducts returns the active products among ids, in the order of ids.
func (s *CatalogService) GetProducts(ctx context.Context, ids []int64) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}
	rows, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]entities.Product, len(rows))
	for _, p := range rows {
		if p.Active {
			byID[p.ID] = p
		}
	}
	out := make([]entities.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// RenderedPost is a post with its body rendered to HTML for one language.
type RenderedPost struct {
	entities.BlogPost
	BodyHTML string
}

func (s *CatalogService) GetPost(ctx context.Context, slug string, lang domain.Language) (*RenderedPost, error) {
	p, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, domain.ErrPostNotFound
	}
	html, err := s.markdown.Render(p.Body.In(lang))
	if err != nil {
		return nil, fmt.Errorf("render post %q: %w", slug, err)
	}
	return &RenderedPost{BlogPost: *p, BodyHTML: html}, nil
}
