package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bigfive/internal/server"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply results service migrations to Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("postgres-url") {
			cfg.Server.PostgresURL, _ = cmd.Flags().GetString("postgres-url")
		}
		if cfg.Server.PostgresURL == "" {
			return errors.New("no Postgres URL: set BIGFIVE_POSTGRES_URL or --postgres-url")
		}

		db := server.OpenPostgres(cfg.Server.PostgresURL)
		defer db.Close()

		out := cmd.OutOrStdout()
		group, err := server.Migrate(ctx, db)
		if err != nil {
			return err
		}
		if group.IsZero() {
			fmt.Fprintln(out, "Database is up to date.")
		} else {
			fmt.Fprintf(out, "Migrated to %s\n", group)
		}

		seed, _ := cmd.Flags().GetBool("seed")
		if !seed {
			return nil
		}
		bank, err := loadBank(ctx, cfg)
		if err != nil {
			return err
		}
		if err := server.SeedBank(ctx, db, bank); err != nil {
			return err
		}
		fmt.Fprintf(out, "Seeded question bank %s (%d questions)\n", bank.ID, len(bank.Questions))
		return nil
	},
}

func init() {
	migrateCmd.Flags().String("postgres-url", "", "Postgres connection URL (overrides BIGFIVE_POSTGRES_URL)")
	migrateCmd.Flags().Bool("seed", false, "Store the configured question bank after migrating")
}
