package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"nordweb/internal/adapters/httpapi"
	"nordweb/internal/application"
	"nordweb/internal/config"
	"nordweb/internal/infrastructure/database"
	"nordweb/internal/infrastructure/i18n"
	"nordweb/internal/infrastructure/logging"
	"nordweb/internal/infrastructure/markdown"
	"nordweb/internal/infrastructure/mt"
	"nordweb/internal/ports/output"
)

const compareSweepInterval = 15 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return err
		}
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	static, err := i18n.NewTranslator(logger)
	if err != nil {
		return err
	}

	var translator output.MachineTranslator
	if c := mt.NewClient(cfg.MTEndpoint, cfg.MTAPIKey, nil); c != nil {
		translator = c
	}

	translations := application.NewTranslationService(
		database.NewTranslationRepository(pool), static, cfg.TranslationCacheTTL, logger)
	catalog := application.NewCatalogService(
		database.NewProductRepository(pool), database.NewPostRepository(pool), markdown.NewRenderer())
	compare := application.NewCompareService(catalog, cfg.CompareIdleTTL)
	go compare.RunSweeper(ctx, compareSweepInterval)

	handler := httpapi.NewHandler(httpapi.Deps{
		Translations: translations,
		Assist:       application.NewAssistService(translator, logger),
		Catalog:      catalog,
		Compare:      compare,
		Content:      application.NewContentService(database.NewContentBlockRepository(pool)),
		Settings:     application.NewSettingsService(database.NewSettingsRepository(pool)),
		Newsletter:   application.NewNewsletterService(database.NewSubscriberRepository(pool), logger),
	}, cfg.AdminToken, cfg.DefaultLanguage, logger)

	return httpapi.NewServer(cfg.HTTPAddr, handler, cfg.ShutdownTimeout, logger).Start(ctx)
}
