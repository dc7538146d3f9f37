package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
	"nordweb/internal/ports/output"
)

const (
	// DefaultTranslationTTL is how long a loaded translation table stays fresh.
	DefaultTranslationTTL = 5 * time.Minute

	translationRetryDelay = 30 * time.Second
	translationLoadLimit  = 5 * time.Second
)

// TranslationService resolves UI strings. Database translations win over the
// static table; the key itself is the last resort.
type TranslationService struct {
	repo   output.TranslationRepository
	static output.StaticTranslations
	log    *zap.Logger
	ttl    time.Duration
	now    func() time.Time

	mu          sync.RWMutex
	dynamic     map[string]entities.TranslationEntry
	nextRefresh time.Time
	generation  uint64
	loads       singleflight.Group
}

func NewTranslationService(
	repo output.TranslationRepository,
	static output.StaticTranslations,
	ttl time.Duration,
	log *zap.Logger,
) *TranslationService {
	if ttl <= 0 {
		ttl = DefaultTranslationTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TranslationService{
		repo:   repo,
		static: static,
		log:    log,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Resolve returns the text for key in lang. It never fails.
func (s *TranslationService) Resolve(ctx context.Context, key string, lang domain.Language) string {
	if key == "" {
		return ""
	}
	if entry, ok := s.table(ctx)[key]; ok {
		if v := entry.Value(lang); v != "" {
			return v
		}
	}
	if s.static != nil {
		if v, ok := s.static.Lookup(lang, key); ok {
			return v
		}
	}
	return key
}

// Dictionary resolves every known key (static and dynamic) for lang.
func (s *TranslationService) Dictionary(ctx context.Context, lang domain.Language) map[string]string {
	table := s.table(ctx)
	out := make(map[string]string, len(table))
	if s.static != nil {
		for _, key := range s.static.Keys(lang) {
			if v, ok := s.static.Lookup(lang, key); ok {
				out[key] = v
			}
		}
	}
	for key, entry := range table {
		if v := entry.Value(lang); v != "" {
			out[key] = v
		} else if _, ok := out[key]; !ok {
			out[key] = key
		}
	}
	return out
}

// Keys lists every key Dictionary would return for lang, sorted.
func (s *TranslationService) Keys(ctx context.Context, lang domain.Language) []string {
	dict := s.Dictionary(ctx, lang)
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Upsert stores an entry and drops the cached table.
func (s *TranslationService) Upsert(ctx context.Context, entry *entities.TranslationEntry) error {
	entry.Key = strings.TrimSpace(entry.Key)
	if entry.Key == "" {
		return fmt.Errorf("empty key: %w", domain.ErrInvalidTranslation)
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("upsert translation %q: %w", entry.Key, err)
	}
	s.Invalidate()
	return nil
}

// Invalidate forces the next lookup to reload the table.
func (s *TranslationService) Invalidate() {
	s.mu.Lock()
	s.generation++
	s.nextRefresh = time.Time{}
	s.mu.Unlock()
}

// table returns the cached translation table, reloading it when stale.
// The result may be nil when nothing could ever be loaded.
func (s *TranslationService) table(ctx context.Context) map[string]entities.TranslationEntry {
	s.mu.RLock()
	table, next := s.dynamic, s.nextRefresh
	s.mu.RUnlock()
	if s.now().Before(next) {
		return table
	}
	v, _, _ := s.loads.Do("translations", func() (any, error) {
		return s.reload(ctx), nil
	})
	return v.(map[string]entities.TranslationEntry)
}

func (s *TranslationService) reload(ctx context.Context) map[string]entities.TranslationEntry {
	// The load is shared between callers, so it must not die with the first one.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), translationLoadLimit)
	defer cancel()

	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	rows, err := s.repo.ListAll(ctx)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Warn("translation table refresh failed, keeping previous table",
			zap.Error(err), zap.Int("cached", len(s.dynamic)))
		s.nextRefresh = now.Add(translationRetryDelay)
		return s.dynamic
	}
	table := make(map[string]entities.TranslationEntry, len(rows))
	for _, row := range rows {
		table[row.Key] = row
	}
	s.dynamic = table
	// An Invalidate during the load means rows may predate the write.
	if s.generation == gen {
		s.nextRefresh = now.Add(s.ttl)
	}
	s.log.Debug("translation table loaded", zap.Int("entries", len(table)))
	return table
}
