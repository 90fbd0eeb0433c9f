package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/bigfive/internal/config"
	"github.com/abhisek/bigfive/internal/logging"
	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/server"
	"github.com/abhisek/bigfive/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the results service",
	Long: "serve accepts finished answer sets over HTTP, scores them and stores the results " +
		"in SQLite or Postgres. It shuts down gracefully on SIGINT or SIGTERM.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("results") {
			cfg.Server.Results, _ = cmd.Flags().GetString("results")
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
		}

		log, err := logging.ForServer(cfg.Log)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer func() { _ = log.Sync() }()

		var (
			results server.ResultStore
			bank    *questions.Bank
		)
		switch cfg.Server.Results {
		case config.ResultsPostgres:
			db := server.OpenPostgres(cfg.Server.PostgresURL)
			defer db.Close()
			results = server.NewPostgresResults(db)

			bank, err = loadPostgresBank(ctx, cfg, log)
			if err != nil {
				return err
			}

		default:
			path, err := resolveDBPath(cfg)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			st, err := store.Open(path, store.WithLogger(log))
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()
			results = st.Results()
		}

		fromFile := false
		if bank == nil {
			if bank, err = loadBank(ctx, cfg); err != nil {
				return err
			}
			fromFile = cfg.Survey.BankFile != ""
		}

		srv := server.New(server.Options{
			Results: results,
			Bank:    bank,
			TestID:  cfg.Survey.TestID,
			Logger:  log,
		})
		if watch, _ := cmd.Flags().GetBool("watch"); watch && fromFile {
			go func() {
				if err := questions.Watch(ctx, cfg.Survey.BankFile, srv.SetBank, log); err != nil {
					log.Warn("bank watcher stopped", zap.Error(err))
				}
			}()
		}

		period := config.Duration(cfg.Server.ShutdownPeriod, server.DefaultShutdownPeriod)
		return srv.Run(ctx, cfg.Server.Addr, period)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
	serveCmd.Flags().String("results", "", "Result store: sqlite or postgres")
	serveCmd.Flags().Bool("watch", true, "Reload survey.bank_file when it changes")
}

// loadPostgresBank reads the question bank seeded by `bigfive migrate --seed`.
// A missing row falls back to the local bank.
func loadPostgresBank(ctx context.Context, cfg config.Config, log *zap.Logger) (*questions.Bank, error) {
	pool, err := pgxpool.Connect(ctx, cfg.Server.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	bank, err := questions.NewPostgresSource(pool, cfg.Server.BankID).Load(ctx)
	if err != nil {
		log.Warn("question bank not found in postgres, using local bank",
			zap.String("bank_id", cfg.Server.BankID), zap.Error(err))
		return nil, nil
	}
	log.Info("question bank loaded from postgres",
		zap.String("bank_id", bank.ID), zap.Int("questions", len(bank.Questions)))
	return bank, nil
}
