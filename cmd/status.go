package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bigfive/internal/logging"
	"github.com/abhisek/bigfive/internal/survey"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the test in progress and the last result",
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

		bank, err := loadBank(ctx, cfg)
		if err != nil {
			return err
		}
		snap, err := repo.Load(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		resultID, err := repo.ResultID(ctx)
		if err != nil {
			return fmt.Errorf("read last result: %w", err)
		}

		printStatus(cmd.OutOrStdout(), snap, len(bank.Questions), resultID, cfg.Endpoint.URL)
		return nil
	},
}

func printStatus(w io.Writer, snap *survey.Snapshot, total int, resultID, endpointURL string) {
	if snap == nil {
		fmt.Fprintln(w, "No test in progress.")
	} else {
		answered := len(snap.Answers)
		pct := 0
		if total > 0 {
			pct = int(math.Round(100 * float64(answered) / float64(total)))
		}
		fmt.Fprintf(w, "Test in progress: %d/%d answered (%d%%), at question %d\n",
			answered, total, pct, snap.CurrentQuestionIndex+1)
	}

	if resultID == "" {
		fmt.Fprintln(w, "No result submitted yet.")
		return
	}
	fmt.Fprintf(w, "Last result: %s\n", resultID)
	fmt.Fprintf(w, "  %s%s\n", strings.TrimRight(endpointURL, "/"), survey.ResultPath(resultID))
}
