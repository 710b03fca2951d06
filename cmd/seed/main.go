package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"docuvault/internal/config"
	"docuvault/internal/repository/postgres"
	"docuvault/internal/seed"
	"docuvault/internal/service"
)

func main() {
	manifestPath := flag.String("manifest", "", "YAML seed manifest (default: built-in admin bootstrap)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed records")
	reset := flag.Bool("reset", false, "Drop all tables before seeding (dev environment only)")
	flag.Parse()

	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logOut := io.Writer(os.Stdout)
	if cfg.Debug {
		logFile, err := config.SetupLogFile("logs", 10)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	logger.Info("seeding database",
		"environment", cfg.Environment,
		"table_prefix", cfg.TablePrefix,
		"schema_only", *schemaOnly,
	)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *reset {
		if cfg.Environment != "dev" {
			log.Fatalf("Refusing -reset in %q environment", cfg.Environment)
		}
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop schema: %v", err)
		}
		logger.Warn("dropped all tables", "table_prefix", cfg.TablePrefix)
	}

	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	logger.Info("schema ready")

	if *schemaOnly {
		return
	}

	manifest := seed.DefaultManifest()
	if *manifestPath != "" {
		manifest, err = seed.LoadManifest(*manifestPath)
		if err != nil {
			log.Fatalf("Failed to load manifest: %v", err)
		}
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	registry := service.NewRegistryService(
		postgres.NewUserRepository(repoConfig),
		postgres.NewDepartmentRepository(repoConfig),
		logger,
	)

	seeder := seed.NewSeeder(registry, logger)
	if err := seeder.Run(ctx, manifest); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	logger.Info("seeding complete",
		"departments", len(manifest.Departments),
		"users", len(manifest.Users),
	)
}
