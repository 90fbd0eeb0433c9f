package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bigfive/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "bigfive",
	Short: "Big Five personality test in your terminal",
	Long: "bigfive walks you through the 120-item IPIP-NEO inventory, saves your progress as you go " +
		"and scores your answers on the five personality domains.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd)
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/bigfive/config.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides BIGFIVE_DB env var)")
	pf.String("store", "", "Progress store backend: sqlite, redis or memory")
	pf.Bool("dev", false, "Enable developer shortcuts")
	pf.String("lang", "", "Language code recorded with results")
	pf.String("endpoint", "", "Results service base URL")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.Flags().String("result", "", "Show a stored result instead of taking the test (\"last\" for the most recent)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings with flags over env over file over defaults.
// A .env file in the working directory feeds the environment first.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	strs := []struct {
		name string
		dst  *string
	}{
		{"db", &cfg.Store.DBPath},
		{"store", &cfg.Store.Backend},
		{"lang", &cfg.Survey.Lang},
		{"endpoint", &cfg.Endpoint.URL},
		{"log-level", &cfg.Log.Level},
	}
	for _, s := range strs {
		if flags.Changed(s.name) {
			*s.dst, _ = flags.GetString(s.name)
		}
	}
	if flags.Changed("dev") {
		cfg.Survey.Dev, _ = flags.GetBool("dev")
	}
}
