package main

import (
	"context"
	"flag"
	"log"

	"webuddhist/internal/config"
	"webuddhist/internal/repository/postgres"
	"webuddhist/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all recitation tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't insert sample data")
	flag.Parse()

	// Load .env file (silently ignore if it doesn't exist)
	_ = godotenv.Load()

	cfg := config.Load()

	// Destructive operations are never allowed against production tables
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	logger, closer, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	logger.Info("seed starting",
		"environment", cfg.Environment,
		"table_prefix", cfg.TablePrefix,
		"drop_tables", *dropTables,
		"schema_only", *schemaOnly,
	)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	txManager := postgres.NewTransactionManager(pool, logger)
	schema := postgres.NewSchema(repoConfig, txManager)

	if *dropTables {
		if err := schema.Drop(ctx); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		logger.Info("tables dropped")
	}

	if err := schema.Create(ctx); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	logger.Info("schema ready")

	if *schemaOnly {
		return
	}

	seeder := seed.NewRecitationSeeder(repoConfig, txManager)
	if err := seeder.Seed(ctx, seed.SampleDataset(cfg.RecitationCollectionSlug)); err != nil {
		log.Fatalf("Failed to seed recitations: %v", err)
	}

	logger.Info("seeding complete", "sample_text_id", seed.SampleEnglishTextID)
}
