package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

type fakeBlockRepo struct {
	blocks []entities.ContentBlock
	saved  []entities.ContentBlock
}

func (r *fakeBlockRepo) ListBySection(_ context.Context, section string, _ bool) ([]entities.ContentBlock, error) {
	var out []entities.ContentBlock
	for _, b := range r.blocks {
		if b.Section == section {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBlockRepo) Upsert(_ context.Context, b *entities.ContentBlock) error {
	b.ID = int64(len(r.saved) + 1)
	r.saved = append(r.saved, *b)
	return nil
}

func TestListSectionLocalizesPublishedBlocks(t *testing.T) {
	repo := &fakeBlockRepo{blocks: []entities.ContentBlock{
		{Section: "home", Key: "hero", Status: entities.StatusPublished,
			Title: domain.Localized{EN: "Welcome", DA: "Velkommen"}, Metadata: entities.HeroMetadata{CTAHref: "/products"}},
		{Section: "home", Key: "teaser", Status: entities.StatusDraft, Title: domain.Localized{EN: "Soon"}},
		{Section: "home", Key: "intro", Status: entities.StatusPublished, Title: domain.Localized{EN: "Hello"}},
		{Section: "about", Key: "story", Status: entities.StatusPublished},
	}}
	svc := NewContentService(repo)

	blocks, err := svc.ListSection(context.Background(), "home", domain.Danish)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Velkommen", blocks[0].Title)
	assert.Equal(t, entities.KindHero, blocks[0].Metadata.Kind())
	assert.Equal(t, "Hello", blocks[1].Title, "missing Danish falls back to English")

	b, err := svc.Block(context.Background(), "home", "intro", domain.English)
	require.NoError(t, err)
	assert.Equal(t, "intro", b.Key)

	_, err = svc.Block(context.Background(), "home", "teaser", domain.English)
	assert.ErrorIs(t, err, domain.ErrBlockNotFound)
}

func TestUpsertBlockDefaults(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewContentService(repo)

	block := &entities.ContentBlock{Section: "home", Key: "hero"}
	require.NoError(t, svc.UpsertBlock(context.Background(), block))
	require.Len(t, repo.saved, 1)
	assert.Equal(t, entities.StatusDraft, repo.saved[0].Status)
	assert.Equal(t, entities.TextMetadata{}, repo.saved[0].Metadata)

	err := svc.UpsertBlock(context.Background(), &entities.ContentBlock{Section: "home"})
	assert.ErrorIs(t, err, domain.ErrInvalidBlock)
	assert.Len(t, repo.saved, 1)
}

type fakeSettingsRepo struct {
	rows []entities.SiteSetting
	err  error
}

func (r *fakeSettingsRepo) List(context.Context) ([]entities.SiteSetting, error) {
	return r.rows, r.err
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, s *entities.SiteSetting) error {
	r.rows = append(r.rows, *s)
	return nil
}

func TestSettings(t *testing.T) {
	repo := &fakeSettingsRepo{rows: []entities.SiteSetting{{Key: "phone", Value: "+45 70 00 00 00"}, {Key: "fax", Value: ""}}}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	assert.Equal(t, "+45 70 00 00 00", svc.Get(ctx, "phone", "n/a"))
	assert.Equal(t, "n/a", svc.Get(ctx, "fax", "n/a"))
	assert.Equal(t, "n/a", svc.Get(ctx, "email", "n/a"))

	require.NoError(t, svc.Set(ctx, "email", "hej@example.dk"))
	assert.Equal(t, "hej@example.dk", svc.Get(ctx, "email", ""))
	assert.ErrorIs(t, svc.Set(ctx, " ", "x"), domain.ErrInvalidSetting)

	repo.err = errors.New("db down")
	assert.Equal(t, "fallback", svc.Get(ctx, "phone", "fallback"))
}

type fakeSubscriberRepo struct {
	emails map[string]domain.Language
}

func (r *fakeSubscriberRepo) Create(_ context.Context, s *entities.NewsletterSubscriber) (bool, error) {
	if _, ok := r.emails[s.Email]; ok {
		return false, nil
	}
	r.emails[s.Email] = s.Language
	return true, nil
}

func TestSubscribe(t *testing.T) {
	repo := &fakeSubscriberRepo{emails: map[string]domain.Language{}}
	svc := NewNewsletterService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.Subscribe(ctx, " Anna@Example.DK ", domain.Danish))
	require.NoError(t, svc.Subscribe(ctx, "anna@example.dk", domain.English))
	assert.Equal(t, map[string]domain.Language{"anna@example.dk": domain.Danish}, repo.emails)

	for _, bad := range []string{"", "not-an-email", "Anna <anna@example.dk>"} {
		assert.ErrorIs(t, svc.Subscribe(ctx, bad, domain.English), domain.ErrInvalidEmail, bad)
	}
}
