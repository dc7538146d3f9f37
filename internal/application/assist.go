package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"nordweb/internal/domain"
	"nordweb/internal/ports/output"
)

type inflightTranslation struct {
	seq    uint64
	cancel context.CancelCauseFunc
}

// AssistService proxies admin translation requests to a machine translator.
// Within one editor session only the latest request is kept alive.
type AssistService struct {
	mt  output.MachineTranslator
	log *zap.Logger

	mu       sync.Mutex
	seq      uint64
	inflight map[string]inflightTranslation
}

// NewAssistService builds the service; a nil translator disables it.
func NewAssistService(mt output.MachineTranslator, log *zap.Logger) *AssistService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssistService{
		mt:       mt,
		log:      log,
		inflight: map[string]inflightTranslation{},
	}
}

// Translate cancels any previous in-flight call of sessionID and translates
// text. A call that gets superseded returns domain.ErrTranslationSuperseded.
func (s *AssistService) Translate(ctx context.Context, sessionID, text string, source, target domain.Language) (string, error) {
	if s.mt == nil {
		return "", domain.ErrTranslationDisabled
	}
	if strings.TrimSpace(text) == "" || source == target {
		return text, nil
	}

	ctx, cancel := context.WithCancelCause(ctx)
	seq := s.register(sessionID, cancel)
	defer func() {
		s.release(sessionID, seq)
		cancel(nil)
	}()

	out, err := s.mt.Translate(ctx, text, source, target)
	if errors.Is(context.Cause(ctx), domain.ErrTranslationSuperseded) {
		return "", domain.ErrTranslationSuperseded
	}
	if err != nil {
		s.log.Warn("machine translation failed",
			zap.String("source", source.String()),
			zap.String("target", target.String()),
			zap.Error(err))
		return "", fmt.Errorf("%w: %w", domain.ErrTranslationUpstream, err)
	}
	return out, nil
}

func (s *AssistService) register(sessionID string, cancel context.CancelCauseFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.inflight[sessionID]; ok {
		prev.cancel(domain.ErrTranslationSuperseded)
	}
	s.seq++
	s.inflight[sessionID] = inflightTranslation{seq: s.seq, cancel: cancel}
	return s.seq
}

func (s *AssistService) release(sessionID string, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.inflight[sessionID]; ok && cur.seq == seq {
		delete(s.inflight, sessionID)
	}
}
