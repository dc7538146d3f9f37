package application

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

// DefaultCompareIdleTTL is how long an untouched compare list is kept.
const DefaultCompareIdleTTL = 24 * time.Hour

type compareSession struct {
	list    entities.CompareList
	touched time.Time
}

// CompareService keeps one compare list per visitor session, in memory only.
type CompareService struct {
	catalog *CatalogService
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*compareSession
}

func NewCompareService(catalog *CatalogService, ttl time.Duration) *CompareService {
	if ttl <= 0 {
		ttl = DefaultCompareIdleTTL
	}
	return &CompareService{
		catalog:  catalog,
		ttl:      ttl,
		now:      time.Now,
		sessions: map[string]*compareSession{},
	}
}

// NewSessionID returns a fresh opaque session identifier.
func (s *CompareService) NewSessionID() string {
	return ulid.MustNew(ulid.Timestamp(s.now()), rand.Reader).String()
}

// IDs returns the product IDs in the session's list.
func (s *CompareService) IDs(sessionID string) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess := s.session(sessionID, false); sess != nil {
		return sess.list.IDs()
	}
	return []int64{}
}

// Products returns the active products in the session's list.
func (s *CompareService) Products(ctx context.Context, sessionID string) ([]entities.Product, error) {
	return s.catalog.GetProducts(ctx, s.IDs(sessionID))
}

// Add puts productID on the session's list. A full list or a duplicate is
// silently ignored. Unknown or inactive products are rejected.
func (s *CompareService) Add(ctx context.Context, sessionID string, productID int64) ([]int64, error) {
	found, err := s.catalog.GetProducts(ctx, []int64{productID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID, true)
	sess.list.Add(productID)
	return sess.list.IDs(), nil
}

func (s *CompareService) Remove(sessionID string, productID int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID, false)
	if sess == nil {
		return []int64{}
	}
	sess.list.Remove(productID)
	return sess.list.IDs()
}

func (s *CompareService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *CompareService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.touched.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *CompareService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// session must be called with mu held.
func (s *CompareService) session(id string, create bool) *compareSession {
	sess, ok := s.sessions[id]
	if !ok {
		if !create {
			return nil
		}
		sess = &compareSession{}
		s.sessions[id] = sess
	}
	sess.touched = s.now()
	return sess
}
