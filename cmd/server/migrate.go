package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"emoped-plan-backend/internal/config"
	"emoped-plan-backend/internal/database"
	"emoped-plan-backend/internal/logger"
	"emoped-plan-backend/internal/store"
)

var migrateStatusOnly bool

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres migrations",
		Long:  `Applies the embedded SQL migrations to DATABASE_URL. Only meaningful with STORE_DRIVER=postgres.`,
		RunE:  runMigrate,
	}

	cmd.Flags().BoolVar(&migrateStatusOnly, "status", false, "List pending migrations without applying them")

	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	if cfg.StoreDriver != config.StoreDriverPostgres {
		return fmt.Errorf("migrate requires STORE_DRIVER=%s, got %q", config.StoreDriverPostgres, cfg.StoreDriver)
	}

	pg, err := store.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pg.Close()

	migrator := database.NewMigrator(pg.DB(), log)
	ctx := cmd.Context()

	if migrateStatusOnly {
		pending, err := migrator.Pending(ctx)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
			return nil
		}
		for _, name := range pending {
			fmt.Fprintf(cmd.OutOrStdout(), "pending: %s\n", name)
		}
		return nil
	}

	return migrator.Run(ctx)
}
