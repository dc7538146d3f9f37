package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"nordweb/internal/domain/entities"
	"nordweb/internal/ports/output"
)

var (
	_ output.SettingsRepository   = (*SettingsRepository)(nil)
	_ output.SubscriberRepository = (*SubscriberRepository)(nil)
)

// SettingsRepository implements output.SettingsRepository using pgx.
type SettingsRepository struct {
	db DBTX
}

func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) List(ctx context.Context) ([]entities.SiteSetting, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value, updated_at FROM site_settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.SiteSetting, error) {
		var (
			s       entities.SiteSetting
			updated pgtype.Timestamptz
		)
		err := row.Scan(&s.Key, &s.Value, &updated)
		s.UpdatedAt = pgtypeTimestamptzToTime(updated)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return out, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *entities.SiteSetting) error {
	var updated pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `INSERT INTO site_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		RETURNING updated_at`, s.Key, s.Value).Scan(&updated)
	if err != nil {
		return fmt.Errorf("upsert setting %q: %w", s.Key, err)
	}
	s.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return nil
}

// SubscriberRepository implements output.SubscriberRepository using pgx.
type SubscriberRepository struct {
	db DBTX
}

func NewSubscriberRepository(db DBTX) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Create(ctx context.Context, s *entities.NewsletterSubscriber) (bool, error) {
	var created pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `INSERT INTO newsletter_subscribers (email, language)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, created_at`, s.Email, s.Language.String()).Scan(&s.ID, &created)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create subscriber: %w", err)
	}
	s.CreatedAt = pgtypeTimestamptzToTime(created)
	return true, nil
}
