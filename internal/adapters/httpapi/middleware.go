package httpapi

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"nordweb/internal/domain"
)

const (
	langParam      = "lang"
	currencyParam  = "currency"
	langCookie     = "lang"
	currencyCookie = "currency"
	compareCookie  = "compare_session"

	preferenceMaxAge = 365 * 24 * time.Hour
)

type ctxKey int

const (
	localeKey ctxKey = iota
	compareSessionKey
)

// Locale is the request-scoped language and display currency.
type Locale struct {
	Lang     domain.Language
	Currency domain.Currency
}

func localeFrom(ctx context.Context) Locale {
	if l, ok := ctx.Value(localeKey).(Locale); ok {
		return l
	}
	return Locale{Lang: domain.DefaultLanguage, Currency: domain.DefaultCurrency}
}

// resolveLanguage picks the language from the lang query parameter, then the
// lang cookie, then Accept-Language.
func resolveLanguage(r *http.Request, fallback domain.Language) domain.Language {
	if v := r.URL.Query().Get(langParam); v != "" {
		if l, err := domain.ParseLanguage(v); err == nil {
			return l
		}
	}
	if c, err := r.Cookie(langCookie); err == nil {
		if l, err := domain.ParseLanguage(c.Value); err == nil {
			return l
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		return domain.MatchAcceptLanguage(accept)
	}
	return fallback
}

// resolveCurrency picks the currency from the query parameter, then the
// cookie. Unknown values are ignored.
func resolveCurrency(r *http.Request) domain.Currency {
	if v := r.URL.Query().Get(currencyParam); v != "" {
		if c, err := domain.ParseCurrency(v); err == nil {
			return c
		}
	}
	if c, err := r.Cookie(currencyCookie); err == nil {
		if cur, err := domain.ParseCurrency(c.Value); err == nil {
			return cur
		}
	}
	return domain.DefaultCurrency
}

func (h *Handler) withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		loc := Locale{
			Lang:     resolveLanguage(r, h.defaultLang),
			Currency: resolveCurrency(r),
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), localeKey, loc)))
	})
}

// requireAdmin checks the bearer token against the configured admin token.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || h.adminToken == "" ||
			subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(h.adminToken)) != 1 {
			h.writeError(w, r, domain.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withCompareSession makes sure the visitor carries a compare session cookie.
// Values that are not ULIDs are replaced by a fresh session.
func (h *Handler) withCompareSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(compareCookie); err == nil {
			if parsed, err := ulid.ParseStrict(strings.TrimSpace(c.Value)); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = h.compare.NewSessionID()
			http.SetCookie(w, &http.Cookie{
				Name:     compareCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), compareSessionKey, id)))
	})
}

func compareSessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(compareSessionKey).(string)
	return id
}

// requestLogger logs one line per request.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func setPreferenceCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(preferenceMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
