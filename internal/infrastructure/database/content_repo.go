package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"nordweb/internal/domain/entities"
	"nordweb/internal/ports/output"
)

var _ output.ContentBlockRepository = (*ContentBlockRepository)(nil)

// ContentBlockRepository implements output.ContentBlockRepository using pgx.
type ContentBlockRepository struct {
	db DBTX
}

func NewContentBlockRepository(db DBTX) *ContentBlockRepository {
	return &ContentBlockRepository{db: db}
}

func (r *ContentBlockRepository) ListBySection(ctx context.Context, section string, includeDrafts bool) ([]entities.ContentBlock, error) {
	f := newFilter("TRUE").add("section = ?", section)
	if !includeDrafts {
		f.add("status = ?", entities.StatusPublished)
	}
	rows, err := r.db.Query(ctx, `SELECT id, section, block_key, title_en, title_da,
		description_en, description_da, metadata, sort_order, status, updated_at
		FROM content_blocks`+f.where()+` ORDER BY sort_order ASC, id ASC`, f.args...)
	if err != nil {
		return nil, fmt.Errorf("list content blocks: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.ContentBlock, error) {
		var (
			b       entities.ContentBlock
			meta    []byte
			updated pgtype.Timestamptz
		)
		if err := row.Scan(&b.ID, &b.Section, &b.Key, &b.Title.EN, &b.Title.DA,
			&b.Description.EN, &b.Description.DA, &meta, &b.SortOrder, &b.Status, &updated); err != nil {
			return b, err
		}
		md, err := entities.DecodeMetadata(meta)
		if err != nil {
			return b, fmt.Errorf("block %s/%s: %w", b.Section, b.Key, err)
		}
		b.Metadata = md
		b.UpdatedAt = pgtypeTimestamptzToTime(updated)
		return b, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list content blocks: %w", err)
	}
	return out, nil
}

func (r *ContentBlockRepository) Upsert(ctx context.Context, b *entities.ContentBlock) error {
	meta, err := entities.EncodeMetadata(b.Metadata)
	if err != nil {
		return err
	}
	var updated pgtype.Timestamptz
	err = r.db.QueryRow(ctx, `INSERT INTO content_blocks
		(section, block_key, title_en, title_da, description_en, description_da, metadata, sort_order, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (section, block_key) DO UPDATE SET
			title_en = EXCLUDED.title_en,
			title_da = EXCLUDED.title_da,
			description_en = EXCLUDED.description_en,
			description_da = EXCLUDED.description_da,
			metadata = EXCLUDED.metadata,
			sort_order = EXCLUDED.sort_order,
			status = EXCLUDED.status,
			updated_at = now()
		RETURNING id, updated_at`,
		b.Section, b.Key, b.Title.EN, b.Title.DA, b.Description.EN, b.Description.DA,
		meta, b.SortOrder, b.Status,
	).Scan(&b.ID, &updated)
	if err != nil {
		return fmt.Errorf("upsert content block: %w", err)
	}
	b.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return nil
}
