// Command seed loads translations, site settings and content blocks from a
// YAML file into the database.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"nordweb/internal/application"
	"nordweb/internal/infrastructure/database"
	"nordweb/internal/infrastructure/logging"
)

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "seed.yaml", "YAML seed file")
	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
	migrate := flag.Bool("migrate", true, "apply migrations before seeding")
	flag.Parse()

	logger, err := logging.NewLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}
	seed, err := ParseSeed(raw)
	if err != nil {
		log.Fatalf("parse %s: %v", *file, err)
	}

	if *migrate {
		if err := database.RunMigrations(*dsn, logger); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, *dsn, logger)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	loader := &Loader{
		Translations: application.NewTranslationService(database.NewTranslationRepository(pool), nil, 0, logger),
		Content:      application.NewContentService(database.NewContentBlockRepository(pool)),
		Settings:     application.NewSettingsService(database.NewSettingsRepository(pool)),
	}
	stats, err := loader.Load(ctx, seed)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeded %d translations, %d settings, %d blocks", stats.Translations, stats.Settings, stats.Blocks)
}
