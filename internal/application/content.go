package application

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
	"nordweb/internal/ports/output"
)

// LocalizedBlock is a content block rendered for one language.
type LocalizedBlock struct {
	Section     string
	Key         string
	Title       string
	Description string
	Metadata    entities.BlockMetadata
	SortOrder   int
}

type ContentService struct {
	blocks output.ContentBlockRepository
}

func NewContentService(blocks output.ContentBlockRepository) *ContentService {
	return &ContentService{blocks: blocks}
}

// ListSection returns the published blocks of section for lang, in display order.
func (s *ContentService) ListSection(ctx context.Context, section string, lang domain.Language) ([]LocalizedBlock, error) {
	rows, err := s.blocks.ListBySection(ctx, section, false)
	if err != nil {
		return nil, fmt.Errorf("list section %q: %w", section, err)
	}
	out := make([]LocalizedBlock, 0, len(rows))
	for _, b := range rows {
		if b.Status != entities.StatusPublished {
			continue
		}
		out = append(out, LocalizedBlock{
			Section:     b.Section,
			Key:         b.Key,
			Title:       b.Title.In(lang),
			Description: b.Description.In(lang),
			Metadata:    b.Metadata,
			SortOrder:   b.SortOrder,
		})
	}
	return out, nil
}

// Block returns one published block of section by key.
func (s *ContentService) Block(ctx context.Context, section, key string, lang domain.Language) (*LocalizedBlock, error) {
	blocks, err := s.ListSection(ctx, section, lang)
	if err != nil {
		return nil, err
	}
	for i := range blocks {
		if blocks[i].Key == key {
			return &blocks[i], nil
		}
	}
	return nil, domain.ErrBlockNotFound
}

// UpsertBlock validates and stores an edited block.
func (s *ContentService) UpsertBlock(ctx context.Context, block *entities.ContentBlock) error {
	if block.Status == "" {
		block.Status = entities.StatusDraft
	}
	if block.Metadata == nil {
		block.Metadata = entities.TextMetadata{}
	}
	if err := block.Validate(); err != nil {
		return err
	}
	return s.blocks.Upsert(ctx, block)
}

type SettingsService struct {
	repo output.SettingsRepository
}

func NewSettingsService(repo output.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) All(ctx context.Context) (entities.SiteSettings, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	out := make(entities.SiteSettings, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

// Get returns the setting for key, or fallback when it is unset or the
// settings cannot be read.
func (s *SettingsService) Get(ctx context.Context, key, fallback string) string {
	all, err := s.All(ctx)
	if err != nil {
		return fallback
	}
	return all.Get(key, fallback)
}

func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.ErrInvalidSetting
	}
	return s.repo.Upsert(ctx, &entities.SiteSetting{Key: key, Value: value})
}

type NewsletterService struct {
	repo output.SubscriberRepository
	log  *zap.Logger
}

func NewNewsletterService(repo output.SubscriberRepository, log *zap.Logger) *NewsletterService {
	if log == nil {
		log = zap.NewNop()
	}
	return &NewsletterService{repo: repo, log: log}
}

// NormalizeEmail validates a bare address ("a@b.dk", no display name) and
// lower-cases it.
func NormalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw || addr.Name != "" {
		return "", domain.ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}

// Subscribe records a sign-up. Subscribing twice is not an error.
func (s *NewsletterService) Subscribe(ctx context.Context, email string, lang domain.Language) error {
	email, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	created, err := s.repo.Create(ctx, &entities.NewsletterSubscriber{Email: email, Language: lang})
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	if created {
		s.log.Info("newsletter subscriber added", zap.String("lang", lang.String()))
	}
	return nil
}
