package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"woo-ah-sik/internal/config"
	"woo-ah-sik/internal/database"
	"woo-ah-sik/internal/logging"
)

// env carries what the root command loads for its subcommands.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (e *env) openDB() (*database.DB, error) {
	db, err := database.NewDB(e.cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "woo-ah-sik",
		Short: "Baby meal plans by developmental stage",
		Long: `Classifies children by age into feeding stages, computes formula amounts for
infants and draws balanced weekly or monthly meal plans, sharing one plan
between siblings at compatible stages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewFromEnv()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			e.cfg, e.logger = cfg, logger
			return nil
		},
	}

	root.AddCommand(
		newStageCmd(),
		newFormulaCmd(),
		newPlanCmd(e),
		newHistoryCmd(e),
		newShoppingCmd(e),
		newMetricsCmd(e),
		newMetricsCleanupCmd(e),
	)
	return root
}
