package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

// Seed is the document format read by the seed command.
type Seed struct {
	Translations map[string]domain.Localized `yaml:"translations"`
	Settings     map[string]string           `yaml:"settings"`
	Blocks       []SeedBlock                 `yaml:"blocks"`
}

type SeedBlock struct {
	Section     string           `yaml:"section"`
	Key         string           `yaml:"key"`
	Title       domain.Localized `yaml:"title"`
	Description domain.Localized `yaml:"description"`
	Metadata    map[string]any   `yaml:"metadata"`
	SortOrder   int              `yaml:"sort_order"`
	Status      string           `yaml:"status"`
}

func ParseSeed(raw []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return &s, nil
}

// Block converts the YAML block into a content block with typed metadata.
func (b SeedBlock) Block() (*entities.ContentBlock, error) {
	var md entities.BlockMetadata = entities.TextMetadata{}
	if len(b.Metadata) > 0 {
		raw, err := json.Marshal(b.Metadata)
		if err != nil {
			return nil, fmt.Errorf("block %s/%s metadata: %w", b.Section, b.Key, err)
		}
		if md, err = entities.DecodeMetadata(raw); err != nil {
			return nil, fmt.Errorf("block %s/%s: %w", b.Section, b.Key, err)
		}
	}
	status := b.Status
	if status == "" {
		status = entities.StatusPublished
	}
	return &entities.ContentBlock{
		Section:     b.Section,
		Key:         b.Key,
		Title:       b.Title,
		Description: b.Description,
		Metadata:    md,
		SortOrder:   b.SortOrder,
		Status:      status,
	}, nil
}

type translationWriter interface {
	Upsert(ctx context.Context, entry *entities.TranslationEntry) error
}

type blockWriter interface {
	UpsertBlock(ctx context.Context, block *entities.ContentBlock) error
}

type settingWriter interface {
	Set(ctx context.Context, key, value string) error
}

// Loader writes a Seed through the application services.
type Loader struct {
	Translations translationWriter
	Content      blockWriter
	Settings     settingWriter
}

type Stats struct {
	Translations int
	Settings     int
	Blocks       int
}

func (l *Loader) Load(ctx context.Context, s *Seed) (Stats, error) {
	var st Stats

	keys := make([]string, 0, len(s.Translations))
	for k := range s.Translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := s.Translations[k]
		if err := l.Translations.Upsert(ctx, &entities.TranslationEntry{Key: k, ValueEN: v.EN, ValueDA: v.DA}); err != nil {
			return st, err
		}
		st.Translations++
	}

	for k, v := range s.Settings {
		if err := l.Settings.Set(ctx, k, v); err != nil {
			return st, err
		}
		st.Settings++
	}

	for _, sb := range s.Blocks {
		b, err := sb.Block()
		if err != nil {
			return st, err
		}
		if err := l.Content.UpsertBlock(ctx, b); err != nil {
			return st, fmt.Errorf("block %s/%s: %w", b.Section, b.Key, err)
		}
		st.Blocks++
	}
	return st, nil
}
