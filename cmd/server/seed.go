package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"emoped-plan-backend/internal/config"
	"emoped-plan-backend/internal/logger"
	"emoped-plan-backend/internal/seed"
	"emoped-plan-backend/internal/services"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the default business plan if none is active",
		Long:  `Creates the embedded e-moped business plan as the active plan when the store has none, then prints the plan history.`,
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)
	ctx := cmd.Context()

	docStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer docStore.Close()

	content, err := seed.BusinessPlan()
	if err != nil {
		return err
	}

	plans := services.NewPlanService(docStore, log)
	created, err := plans.EnsureSeeded(ctx, content)
	if err != nil {
		return err
	}
	if !created {
		log.Info("active business plan already present, nothing seeded")
	}

	history, err := plans.ListPlans(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACTIVE\tCREATED\tPROJECT")
	for _, p := range history {
		fmt.Fprintf(w, "%s\t%t\t%s\t%s\n",
			p.ID, p.Active, p.CreatedAt.Format(time.DateTime), p.Content.ExecutiveSummary.ProjectName)
	}
	return w.Flush()
}
