package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"nordweb/internal/domain/entities"
	"nordweb/internal/ports/output"
)

var _ output.TranslationRepository = (*TranslationRepository)(nil)

// TranslationRepository implements output.TranslationRepository using pgx.
type TranslationRepository struct {
	db DBTX
}

func NewTranslationRepository(db DBTX) *TranslationRepository {
	return &TranslationRepository{db: db}
}

func (r *TranslationRepository) ListAll(ctx context.Context) ([]entities.TranslationEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value_en, value_da, updated_at FROM translations`)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.TranslationEntry, error) {
		var (
			t       entities.TranslationEntry
			updated pgtype.Timestamptz
		)
		err := row.Scan(&t.Key, &t.ValueEN, &t.ValueDA, &updated)
		t.UpdatedAt = pgtypeTimestamptzToTime(updated)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	return out, nil
}

func (r *TranslationRepository) Upsert(ctx context.Context, t *entities.TranslationEntry) error {
	var updated pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `INSERT INTO translations (key, value_en, value_da)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value_en = EXCLUDED.value_en,
			value_da = EXCLUDED.value_da,
			updated_at = now()
		RETURNING updated_at`, t.Key, t.ValueEN, t.ValueDA).Scan(&updated)
	if err != nil {
		return fmt.Errorf("upsert translation: %w", err)
	}
	t.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return nil
}
