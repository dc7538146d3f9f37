package application

import (
	"context"
	"sort"
	"sync"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
	"nordweb/internal/ports/output"
)

type fakeTranslationRepo struct {
	mu      sync.Mutex
	entries map[string]entities.TranslationEntry
	err     error
	loads   int

	// afterList runs once ListAll has taken its snapshot.
	afterList func()
}

func newFakeTranslationRepo(entries ...entities.TranslationEntry) *fakeTranslationRepo {
	r := &fakeTranslationRepo{entries: map[string]entities.TranslationEntry{}}
	for _, e := range entries {
		r.entries[e.Key] = e
	}
	return r
}

func (r *fakeTranslationRepo) ListAll(context.Context) ([]entities.TranslationEntry, error) {
	r.mu.Lock()
	r.loads++
	if r.err != nil {
		r.mu.Unlock()
		return nil, r.err
	}
	out := make([]entities.TranslationEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	hook := r.afterList
	r.afterList = nil
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (r *fakeTranslationRepo) Upsert(_ context.Context, e *entities.TranslationEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries[e.Key] = *e
	return nil
}

func (r *fakeTranslationRepo) set(e entities.TranslationEntry) {
	r.mu.Lock()
	r.entries[e.Key] = e
	r.mu.Unlock()
}

func (r *fakeTranslationRepo) fail(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *fakeTranslationRepo) loadCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loads
}

type fakeStatic map[domain.Language]map[string]string

func (f fakeStatic) Lookup(lang domain.Language, key string) (string, bool) {
	v, ok := f[lang][key]
	return v, ok
}

func (f fakeStatic) Keys(lang domain.Language) []string {
	keys := make([]string, 0, len(f[lang]))
	for k := range f[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type fakeProductRepo struct {
	products []entities.Product
	err      error

	mu      sync.Mutex
	counted []string
	listed  []output.ListQuery
}

func (r *fakeProductRepo) filtered(category string) []entities.Product {
	var out []entities.Product
	for _, p := range r.products {
		if p.Active && (category == "" || p.CategorySlug == category) {
			out = append(out, p)
		}
	}
	return out
}

func (r *fakeProductRepo) ListCategories(context.Context) ([]entities.ProductCategory, error) {
	return []entities.ProductCategory{{ID: 1, Slug: "chairs"}}, r.err
}

func (r *fakeProductRepo) ListActive(_ context.Context, q output.ListQuery) ([]entities.Product, error) {
	r.mu.Lock()
	r.listed = append(r.listed, q)
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	rows := r.filtered(q.Category)
	if q.Offset >= len(rows) {
		return nil, nil
	}
	return rows[q.Offset:min(q.Offset+q.Limit, len(rows))], nil
}

func (r *fakeProductRepo) CountActive(_ context.Context, category string) (int, error) {
	r.mu.Lock()
	r.counted = append(r.counted, category)
	r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return len(r.filtered(category)), nil
}

func (r *fakeProductRepo) FindBySlug(_ context.Context, slug string) (*entities.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []int64) ([]entities.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entities.Product
	for _, p := range r.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type fakePostRepo struct {
	posts []entities.BlogPost
}

func (r *fakePostRepo) filtered(category string) []entities.BlogPost {
	var out []entities.BlogPost
	for _, p := range r.posts {
		if p.Published && (category == "" || p.Category == category) {
			out = append(out, p)
		}
	}
	return out
}

func (r *fakePostRepo) ListPublished(_ context.Context, q output.ListQuery) ([]entities.BlogPost, error) {
	rows := r.filtered(q.Category)
	if q.Offset >= len(rows) {
		return nil, nil
	}
	return rows[q.Offset:min(q.Offset+q.Limit, len(rows))], nil
}

func (r *fakePostRepo) CountPublished(_ context.Context, category string) (int, error) {
	return len(r.filtered(category)), nil
}

func (r *fakePostRepo) FindBySlug(_ context.Context, slug string) (*entities.BlogPost, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

type fakeRenderer struct{}

func (fakeRenderer) Render(source string) (string, error) {
	return "<p>" + source + "</p>", nil
}

func products(n int) []entities.Product {
	out := make([]entities.Product, n)
	for i := range out {
		out[i] = entities.Product{
			ID:           int64(i + 1),
			Slug:         "p" + string(rune('a'+i)),
			CategorySlug: "chairs",
			Active:       true,
			Price:        100,
		}
	}
	return out
}
