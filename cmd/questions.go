package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/bigfive/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Validate a question bank and summarise it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("file") {
			cfg.Survey.BankFile, _ = cmd.Flags().GetString("file")
		}
		bank, err := loadBank(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return summarizeBank(cmd.OutOrStdout(), bank)
	},
}

func init() {
	questionsCmd.Flags().String("file", "", "YAML or JSON bank to check (default: embedded bank)")
}

// summarizeBank prints per-domain item and keying counts.
func summarizeBank(w io.Writer, bank *questions.Bank) error {
	fmt.Fprintf(w, "Bank %s (version %s, lang %s): %d questions\n\n",
		bank.ID, bank.Version, bank.Lang, len(bank.Questions))

	type counts struct{ items, plus, minus int }
	byDomain := make(map[string]*counts)
	facets := make(map[string]map[int]bool)
	for _, q := range bank.Questions {
		c := byDomain[q.Domain]
		if c == nil {
			c = &counts{}
			byDomain[q.Domain] = c
			facets[q.Domain] = make(map[int]bool)
		}
		c.items++
		if q.Keyed == questions.KeyedMinus {
			c.minus++
		} else {
			c.plus++
		}
		facets[q.Domain][q.Facet] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DOMAIN\tITEMS\tFACETS\t+KEYED\t-KEYED")
	for _, d := range questions.Domains {
		c := byDomain[d.Key]
		if c == nil {
			c = &counts{}
		}
		fmt.Fprintf(tw, "%s (%s)\t%d\t%d\t%d\t%d\n", d.Name, d.Key, c.items, len(facets[d.Key]), c.plus, c.minus)
	}
	return tw.Flush()
}
