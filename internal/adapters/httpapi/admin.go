package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

const editorSessionHeader = "X-Editor-Session"

type translationRequest struct {
	EN string `json:"en"`
	DA string `json:"da"`
}

func (h *Handler) putTranslation(w http.ResponseWriter, r *http.Request) {
	var req translationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	entry := &entities.TranslationEntry{Key: chi.URLParam(r, "key"), ValueEN: req.EN, ValueDA: req.DA}
	if err := h.translations.Upsert(r.Context(), entry); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": entry.Key, "en": entry.ValueEN, "da": entry.ValueDA})
}

type blockRequest struct {
	Title       domain.Localized `json:"title"`
	Description domain.Localized `json:"description"`
	Metadata    json.RawMessage  `json:"metadata"`
	SortOrder   int              `json:"sortOrder"`
	Status      string           `json:"status"`
}

func (h *Handler) putBlock(w http.ResponseWriter, r *http.Request) {
	var req blockRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	md, err := entities.DecodeMetadata(req.Metadata)
	if err != nil {
		h.writeError(w, r, domain.ErrInvalidBlock)
		return
	}
	block := &entities.ContentBlock{
		Section:     chi.URLParam(r, "section"),
		Key:         chi.URLParam(r, "key"),
		Title:       req.Title,
		Description: req.Description,
		Metadata:    md,
		SortOrder:   req.SortOrder,
		Status:      req.Status,
	}
	if err := h.content.UpsertBlock(r.Context(), block); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":        block.ID,
		"section":   block.Section,
		"key":       block.Key,
		"status":    block.Status,
		"updatedAt": block.UpdatedAt,
	})
}

type settingRequest struct {
	Value string `json:"value"`
}

func (h *Handler) putSetting(w http.ResponseWriter, r *http.Request) {
	var req settingRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	key := chi.URLParam(r, "key")
	if err := h.settings.Set(r.Context(), key, req.Value); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": req.Value})
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// translate drafts the other language of a bilingual field. Each editor
// session has at most one call in flight; a newer call replaces it.
func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	source, err := domain.ParseLanguage(req.Source)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	target, err := domain.ParseLanguage(req.Target)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	session := strings.TrimSpace(r.Header.Get(editorSessionHeader))
	if session == "" {
		session = "default"
	}
	out, err := h.assist.Translate(r.Context(), session, req.Text, source, target)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": out, "source": source.String(), "target": target.String()})
}
