package main

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

type recorder struct {
	translations []entities.TranslationEntry
	blocks       []entities.ContentBlock
	settings     map[string]string
}

func (r *recorder) Upsert(_ context.Context, e *entities.TranslationEntry) error {
	r.translations = append(r.translations, *e)
	return nil
}

func (r *recorder) UpsertBlock(_ context.Context, b *entities.ContentBlock) error {
	if err := b.Validate(); err != nil {
		return err
	}
	r.blocks = append(r.blocks, *b)
	return nil
}

func (r *recorder) Set(_ context.Context, key, value string) error {
	r.settings[key] = value
	return nil
}

func TestLoadExampleSeed(t *testing.T) {
	raw, err := os.ReadFile("../../seed.example.yaml")
	require.NoError(t, err)
	seed, err := ParseSeed(raw)
	require.NoError(t, err)

	rec := &recorder{settings: map[string]string{}}
	loader := &Loader{Translations: rec, Content: rec, Settings: rec}
	stats, err := loader.Load(context.Background(), seed)
	require.NoError(t, err)

	assert.Equal(t, Stats{Translations: 2, Settings: 2, Blocks: 2}, stats)
	assert.Equal(t, "hero.title", rec.translations[0].Key, "translations are written in key order")
	assert.Equal(t, "Nordiske møbler, bygget til at holde", rec.translations[0].ValueDA)
	assert.Equal(t, "hello@example.dk", rec.settings["contact_email"])

	hero := rec.blocks[0]
	assert.Equal(t, entities.StatusPublished, hero.Status)
	require.IsType(t, entities.HeroMetadata{}, hero.Metadata)
	assert.Equal(t, "Se kollektionen", hero.Metadata.(entities.HeroMetadata).CTALabel.In(domain.Danish))

	stat := rec.blocks[1]
	assert.Equal(t, entities.StatusPublished, stat.Status, "status defaults to published")
	assert.Equal(t, entities.StatMetadata{Value: "25", Suffix: "+"}, stat.Metadata)
}

func TestLoadStopsOnInvalidBlock(t *testing.T) {
	seed, err := ParseSeed([]byte(`
blocks:
  - section: home
    status: archived
`))
	require.NoError(t, err)

	rec := &recorder{settings: map[string]string{}}
	_, err = (&Loader{Translations: rec, Content: rec, Settings: rec}).Load(context.Background(), seed)
	assert.ErrorIs(t, err, domain.ErrInvalidBlock)
}

func TestParseSeedRejectsBadYAML(t *testing.T) {
	_, err := ParseSeed([]byte("blocks: [oops"))
	assert.Error(t, err)
}
