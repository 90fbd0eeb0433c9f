package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bigfive/internal/logging"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the test in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := logging.ForTUI(cfg.Log)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer func() { _ = log.Sync() }()

		repo, closeStore, err := openProgress(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := repo.Clear(ctx); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared. The next test starts from the first question.")
		return nil
	},
}
