package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bigfive/internal/app"
	"github.com/abhisek/bigfive/internal/config"
	"github.com/abhisek/bigfive/internal/logging"
	"github.com/abhisek/bigfive/internal/survey"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the personality test",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd)
	},
}

// runTake opens the progress store, loads the questions and launches the TUI.
func runTake(cmd *cobra.Command) error {
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

	client, err := newEndpointClient(cfg, log)
	if err != nil {
		return err
	}

	resultID := ""
	if cmd.Flags().Lookup("result") != nil {
		resultID, _ = cmd.Flags().GetString("result")
	}
	if resultID == "last" {
		resultID, err = repo.ResultID(ctx)
		if err != nil {
			return fmt.Errorf("read last result: %w", err)
		}
		if resultID == "" {
			return errors.New("no result has been submitted yet")
		}
	}
	if resultID != "" {
		return app.Run(ctx, app.Options{ResultID: resultID, Fetcher: client, Logger: log})
	}

	bank, err := loadBank(ctx, cfg)
	if err != nil {
		return err
	}

	ctrl := survey.New(survey.Options{
		Questions:     bank.Questions,
		Repo:          repo,
		Submitter:     client,
		Logger:        log,
		TestID:        cfg.Survey.TestID,
		Lang:          cfg.Survey.Lang,
		Pacing:        config.Duration(cfg.Survey.Pacing, survey.DefaultPacing),
		WideThreshold: cfg.Survey.WideThreshold,
		Dev:           cfg.Survey.Dev,
	})
	restored, err := ctrl.RestoreIfPresent(ctx)
	if err != nil {
		return err
	}

	return app.Run(ctx, app.Options{
		Controller: ctrl,
		Submitter:  client,
		Fetcher:    client,
		Logger:     log,
		Restored:   restored,
	})
}
