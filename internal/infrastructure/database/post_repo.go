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

var _ output.PostRepository = (*PostRepository)(nil)

const postColumns = `id, slug, category, title_en, title_da, excerpt_en, excerpt_da,
	body_en, body_da, cover_image, published, published_at, created_at, updated_at`

// PostRepository implements output.PostRepository using pgx.
type PostRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) *PostRepository {
	return &PostRepository{db: db}
}

func publishedPostFilter(category string) *filter {
	f := newFilter("published")
	if category != "" {
		f.add("category = ?", category)
	}
	return f
}

func (r *PostRepository) ListPublished(ctx context.Context, q output.ListQuery) ([]entities.BlogPost, error) {
	f := publishedPostFilter(q.Category)
	limit, args := f.page(q.Limit, q.Offset)
	sql := "SELECT " + postColumns + " FROM blog_posts" + f.where() +
		" ORDER BY published_at DESC NULLS LAST, id DESC" + limit
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanPost)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return out, nil
}

func (r *PostRepository) CountPublished(ctx context.Context, category string) (int, error) {
	f := publishedPostFilter(category)
	var n int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM blog_posts"+f.where(), f.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count published posts: %w", err)
	}
	return n, nil
}

func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	rows, err := r.db.Query(ctx, "SELECT "+postColumns+" FROM blog_posts WHERE slug = $1", slug)
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPost)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	return &p, nil
}

func scanPost(row pgx.CollectableRow) (entities.BlogPost, error) {
	var (
		p                             entities.BlogPost
		publishedAt, created, updated pgtype.Timestamptz
	)
	err := row.Scan(
		&p.ID, &p.Slug, &p.Category,
		&p.Title.EN, &p.Title.DA, &p.Excerpt.EN, &p.Excerpt.DA, &p.Body.EN, &p.Body.DA,
		&p.CoverImage, &p.Published, &publishedAt, &created, &updated,
	)
	p.PublishedAt = pgtypeTimestamptzToTime(publishedAt)
	p.CreatedAt = pgtypeTimestamptzToTime(created)
	p.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return p, err
}
