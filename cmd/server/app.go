package main

import (
	"context"
	"fmt"
	"log/slog"

	"emoped-plan-backend/internal/config"
	"emoped-plan-backend/internal/database"
	"emoped-plan-backend/internal/storage"
	"emoped-plan-backend/internal/store"
)

// openStore connects the configured document store and brings its schema
// or indexes up to date.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (store.DocumentStore, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pg, err := store.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.NewMigrator(pg.DB(), log).Run(ctx); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return pg, nil

	case config.StoreDriverMongo:
		m, err := store.NewMongo(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return nil, err
		}
		if err := m.EnsureIndexes(ctx); err != nil {
			m.Close()
			return nil, err
		}
		return m, nil

	case config.StoreDriverMemory:
		log.Warn("using in-memory store; data is lost on restart")
		return store.NewMemory(), nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func openBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.BlobDriver {
	case config.BlobDriverSupabase:
		return storage.NewSupabase(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket), nil
	case config.BlobDriverLocal:
		return storage.NewLocal(cfg.UploadDir)
	}
	return nil, fmt.Errorf("unknown blob driver %q", cfg.BlobDriver)
}
