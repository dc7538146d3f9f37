package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
)

var startTime = time.Now()

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(startTime).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) listTranslations(w http.ResponseWriter, r *http.Request) {
	lang := localeFrom(r.Context()).Lang
	writeJSON(w, http.StatusOK, map[string]any{
		"lang":         lang,
		"translations": h.translations.Dictionary(r.Context(), lang),
	})
}

func (h *Handler) getTranslation(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	lang := localeFrom(r.Context()).Lang
	writeJSON(w, http.StatusOK, map[string]string{
		"key":   key,
		"lang":  lang.String(),
		"value": h.translations.Resolve(r.Context(), key, lang),
	})
}

type currencyView struct {
	Code    string  `json:"code"`
	Rate    float64 `json:"rate"`
	Example string  `json:"example"`
	Active  bool    `json:"active"`
}

func (h *Handler) listCurrencies(w http.ResponseWriter, r *http.Request) {
	active := localeFrom(r.Context()).Currency
	out := make([]currencyView, 0, len(domain.Currencies))
	for _, c := range domain.Currencies {
		out = append(out, currencyView{
			Code:    c.String(),
			Rate:    c.Rate(),
			Example: domain.FormatPrice(100, c),
			Active:  c == active,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type preferencesRequest struct {
	Lang     string `json:"lang"`
	Currency string `json:"currency"`
}

// setPreferences persists the visitor's language and currency as cookies.
func (h *Handler) setPreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	loc := localeFrom(r.Context())
	if req.Lang != "" {
		lang, err := domain.ParseLanguage(req.Lang)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		loc.Lang = lang
	}
	if req.Currency != "" {
		cur, err := domain.ParseCurrency(req.Currency)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		loc.Currency = cur
	}
	setPreferenceCookie(w, langCookie, loc.Lang.String())
	setPreferenceCookie(w, currencyCookie, loc.Currency.String())
	writeJSON(w, http.StatusOK, map[string]string{
		"lang":     loc.Lang.String(),
		"currency": loc.Currency.String(),
	})
}

// pageParam reads ?page=, treating anything unparsable as the first page.
func pageParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return n
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	lang := localeFrom(r.Context()).Lang
	cats, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryView{Slug: c.Slug, Name: c.Name.In(lang)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	loc := localeFrom(r.Context())
	page, err := h.catalog.ListProducts(r.Context(), r.URL.Query().Get("category"), pageParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPageView(page, func(p entities.Product) productView {
		return newProductView(p, loc)
	}))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newProductView(*p, localeFrom(r.Context())))
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	lang := localeFrom(r.Context()).Lang
	page, err := h.catalog.ListPosts(r.Context(), r.URL.Query().Get("category"), pageParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPageView(page, func(p entities.BlogPost) postView {
		return newPostView(p, lang)
	}))
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	lang := localeFrom(r.Context()).Lang
	p, err := h.catalog.GetPost(r.Context(), chi.URLParam(r, "slug"), lang)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	v := newPostView(p.BlogPost, lang)
	v.BodyHTML = p.BodyHTML
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) listBlocks(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	lang := localeFrom(r.Context()).Lang
	blocks, err := h.content.ListSection(r.Context(), section, lang)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]blockView, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, newBlockView(b, lang))
	}
	writeJSON(w, http.StatusOK, map[string]any{"section": section, "blocks": out})
}

func (h *Handler) getBlock(w http.ResponseWriter, r *http.Request) {
	lang := localeFrom(r.Context()).Lang
	b, err := h.content.Block(r.Context(), chi.URLParam(r, "section"), chi.URLParam(r, "key"), lang)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newBlockView(*b, lang))
}

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.All(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	lang := localeFrom(r.Context()).Lang
	if err := h.newsletter.Subscribe(r.Context(), req.Email, lang); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": h.translations.Resolve(r.Context(), "newsletter.subscribed", lang),
	})
}
