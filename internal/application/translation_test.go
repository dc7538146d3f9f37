package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

var testStatic = fakeStatic{
	domain.English: {"nav.home": "Home", "nav.products": "Products"},
	domain.Danish:  {"nav.home": "Hjem"},
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestTranslations(repo *fakeTranslationRepo) (*TranslationService, *clock) {
	svc := NewTranslationService(repo, testStatic, time.Minute, nil)
	c := &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = c.now
	return svc, c
}

func TestResolveOrder(t *testing.T) {
	repo := newFakeTranslationRepo(
		entities.TranslationEntry{Key: "nav.home", ValueEN: "Start", ValueDA: "Forside"},
		entities.TranslationEntry{Key: "hero.title", ValueEN: "Nordic design"},
	)
	svc, _ := newTestTranslations(repo)
	ctx := context.Background()

	assert.Equal(t, "Forside", svc.Resolve(ctx, "nav.home", domain.Danish), "database wins")
	assert.Equal(t, "Products", svc.Resolve(ctx, "nav.products", domain.English), "static fallback")
	assert.Equal(t, "nav.products", svc.Resolve(ctx, "nav.products", domain.Danish), "static table is strict per language")
	assert.Equal(t, "hero.title", svc.Resolve(ctx, "hero.title", domain.Danish), "empty database value falls through")
	assert.Equal(t, "missing.key", svc.Resolve(ctx, "missing.key", domain.English))
	assert.Equal(t, "", svc.Resolve(ctx, "", domain.English))
}

func TestResolveNeverFails(t *testing.T) {
	repo := newFakeTranslationRepo()
	repo.fail(errors.New("db down"))
	svc, _ := newTestTranslations(repo)

	assert.Equal(t, "Hjem", svc.Resolve(context.Background(), "nav.home", domain.Danish))
	assert.Equal(t, "x.y", svc.Resolve(context.Background(), "x.y", domain.Danish))

	bare := NewTranslationService(repo, nil, 0, nil)
	assert.Equal(t, "nav.home", bare.Resolve(context.Background(), "nav.home", domain.English))
}

func TestTranslationCacheTTL(t *testing.T) {
	repo := newFakeTranslationRepo(entities.TranslationEntry{Key: "a", ValueEN: "one"})
	svc, clk := newTestTranslations(repo)
	ctx := context.Background()

	assert.Equal(t, "one", svc.Resolve(ctx, "a", domain.English))
	repo.set(entities.TranslationEntry{Key: "a", ValueEN: "two"})

	clk.advance(30 * time.Second)
	assert.Equal(t, "one", svc.Resolve(ctx, "a", domain.English), "served from cache within TTL")
	assert.Equal(t, 1, repo.loadCount())

	clk.advance(31 * time.Second)
	assert.Equal(t, "two", svc.Resolve(ctx, "a", domain.English))
	assert.Equal(t, 2, repo.loadCount())
}

func TestTranslationRefreshFailureKeepsStaleTable(t *testing.T) {
	repo := newFakeTranslationRepo(entities.TranslationEntry{Key: "a", ValueEN: "one"})
	svc, clk := newTestTranslations(repo)
	ctx := context.Background()

	require.Equal(t, "one", svc.Resolve(ctx, "a", domain.English))

	repo.fail(errors.New("db down"))
	clk.advance(2 * time.Minute)
	assert.Equal(t, "one", svc.Resolve(ctx, "a", domain.English))
	loads := repo.loadCount()

	clk.advance(10 * time.Second)
	svc.Resolve(ctx, "a", domain.English)
	assert.Equal(t, loads, repo.loadCount(), "retry is delayed after a failure")

	repo.fail(nil)
	repo.set(entities.TranslationEntry{Key: "a", ValueEN: "two"})
	clk.advance(translationRetryDelay)
	assert.Equal(t, "two", svc.Resolve(ctx, "a", domain.English))
}

func TestUpsertInvalidatesCache(t *testing.T) {
	repo := newFakeTranslationRepo()
	svc, _ := newTestTranslations(repo)
	ctx := context.Background()

	assert.Equal(t, "Home", svc.Resolve(ctx, "nav.home", domain.English))
	require.NoError(t, svc.Upsert(ctx, &entities.TranslationEntry{Key: " nav.home ", ValueEN: "Welcome"}))
	assert.Equal(t, "Welcome", svc.Resolve(ctx, "nav.home", domain.English))

	err := svc.Upsert(ctx, &entities.TranslationEntry{Key: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidTranslation)
}

func TestUpsertDuringReloadIsNotLost(t *testing.T) {
	repo := newFakeTranslationRepo(entities.TranslationEntry{Key: "a", ValueEN: "one"})
	svc, _ := newTestTranslations(repo)
	ctx := context.Background()

	repo.afterList = func() {
		require.NoError(t, svc.Upsert(ctx, &entities.TranslationEntry{Key: "a", ValueEN: "two"}))
	}
	assert.Equal(t, "one", svc.Resolve(ctx, "a", domain.English), "snapshot taken before the write")
	assert.Equal(t, "two", svc.Resolve(ctx, "a", domain.English))
	assert.Equal(t, 2, repo.loadCount())
}

func TestDictionaryOverlaysDatabase(t *testing.T) {
	repo := newFakeTranslationRepo(
		entities.TranslationEntry{Key: "nav.home", ValueDA: "Forside"},
		entities.TranslationEntry{Key: "hero.title", ValueEN: "Nordic design"},
	)
	svc, _ := newTestTranslations(repo)

	dict := svc.Dictionary(context.Background(), domain.Danish)
	assert.Equal(t, map[string]string{
		"nav.home":   "Forside",
		"hero.title": "hero.title",
	}, dict)

	assert.Equal(t, []string{"hero.title", "nav.home", "nav.products"}, svc.Keys(context.Background(), domain.English))
}

func TestConcurrentResolveSharesOneLoad(t *testing.T) {
	repo := newFakeTranslationRepo(entities.TranslationEntry{Key: "a", ValueEN: "one"})
	svc, _ := newTestTranslations(repo)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "one", svc.Resolve(context.Background(), "a", domain.English))
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, repo.loadCount(), 32)
	assert.GreaterOrEqual(t, repo.loadCount(), 1)
}
