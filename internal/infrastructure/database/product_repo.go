package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
	"nordweb/internal/ports/output"
)

var _ output.ProductRepository = (*ProductRepository)(nil)

const (
	productColumns = `p.id, p.slug, COALESCE(p.category_id, 0), COALESCE(c.slug, ''),
	p.name_en, p.name_da, p.description_en, p.description_da,
	p.images, p.specs, p.price::float8, p.active, p.sort_order, p.created_at, p.updated_at`
	productFrom = ` FROM products p LEFT JOIN product_categories c ON c.id = p.category_id`
)

// ProductRepository implements output.ProductRepository using pgx.
type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func activeProductFilter(category string) *filter {
	f := newFilter("p.active")
	if category != "" {
		f.add("c.slug = ?", category)
	}
	return f
}

func (r *ProductRepository) ListCategories(ctx context.Context) ([]entities.ProductCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, slug, name_en, name_da, sort_order
		FROM product_categories ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.ProductCategory, error) {
		var c entities.ProductCategory
		err := row.Scan(&c.ID, &c.Slug, &c.Name.EN, &c.Name.DA, &c.SortOrder)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (r *ProductRepository) ListActive(ctx context.Context, q output.ListQuery) ([]entities.Product, error) {
	f := activeProductFilter(q.Category)
	limit, args := f.page(q.Limit, q.Offset)
	sql := "SELECT " + productColumns + productFrom + f.where() +
		" ORDER BY p.sort_order ASC, p.id ASC" + limit
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return out, nil
}

func (r *ProductRepository) CountActive(ctx context.Context, category string) (int, error) {
	f := activeProductFilter(category)
	var n int
	if err := r.db.QueryRow(ctx, "SELECT count(*)"+productFrom+f.where(), f.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count active products: %w", err)
	}
	return n, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	rows, err := r.db.Query(ctx, "SELECT "+productColumns+productFrom+" WHERE p.slug = $1", slug)
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]entities.Product, error) {
	rows, err := r.db.Query(ctx, "SELECT "+productColumns+productFrom+" WHERE p.id = ANY($1)", ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	return out, nil
}

func scanProduct(row pgx.CollectableRow) (entities.Product, error) {
	var (
		p                entities.Product
		created, updated pgtype.Timestamptz
	)
	err := row.Scan(
		&p.ID, &p.Slug, &p.CategoryID, &p.CategorySlug,
		&p.Name.EN, &p.Name.DA, &p.Description.EN, &p.Description.DA,
		&p.Images, &p.Specs, &p.Price, &p.Active, &p.SortOrder, &created, &updated,
	)
	p.CreatedAt = pgtypeTimestamptzToTime(created)
	p.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return p, err
}
