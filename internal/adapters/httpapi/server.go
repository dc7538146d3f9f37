package httpapi

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	requestTimeout    = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Routes builds the chi router for the API.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(h.withLocale)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errorBody{Code: "route_not_found", Message: "no route for " + req.URL.Path}})
	})

	r.Get("/healthz", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/translations", h.listTranslations)
		r.Get("/translations/{key}", h.getTranslation)
		r.Get("/currencies", h.listCurrencies)
		r.Put("/preferences", h.setPreferences)

		r.Get("/categories", h.listCategories)
		r.Get("/products", h.listProducts)
		r.Get("/products/{slug}", h.getProduct)
		r.Get("/posts", h.listPosts)
		r.Get("/posts/{slug}", h.getPost)

		r.Get("/blocks/{section}", h.listBlocks)
		r.Get("/blocks/{section}/{key}", h.getBlock)
		r.Get("/settings", h.listSettings)
		r.Post("/newsletter", h.subscribe)

		r.Group(func(r chi.Router) {
			r.Use(h.withCompareSession)
			r.Get("/compare", h.getCompare)
			r.Post("/compare", h.addCompare)
			r.Delete("/compare", h.clearCompare)
			r.Delete("/compare/{productID}", h.removeCompare)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Put("/translations/{key}", h.putTranslation)
			r.Put("/blocks/{section}/{key}", h.putBlock)
			r.Put("/settings/{key}", h.putSetting)
			r.Post("/translate", h.translate)
		})
	})
	return r
}

// Server is the HTTP adapter.
type Server struct {
	srv             *http.Server
	log             *zap.Logger
	shutdownTimeout time.Duration
}

// NewServer wires the handler's routes onto an http.Server listening on addr.
func NewServer(addr string, h *Handler, shutdownTimeout time.Duration, log *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           h.Routes(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log:             log,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until SIGINT/SIGTERM or ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
