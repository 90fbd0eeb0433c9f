package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bigfive/internal/config"
	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/survey"
)

func TestApplyFlags(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	for _, name := range []string{"db", "store", "lang", "endpoint", "log-level"} {
		c.Flags().String(name, "", "")
	}
	c.Flags().Bool("dev", false, "")
	require.NoError(t, c.ParseFlags([]string{"--store", "memory", "--lang", "de", "--dev"}))

	cfg := config.DefaultConfig()
	cfg.Endpoint.URL = "http://from-file:1"
	applyFlags(c, &cfg)

	assert.Equal(t, config.StoreMemory, cfg.Store.Backend)
	assert.Equal(t, "de", cfg.Survey.Lang)
	assert.True(t, cfg.Survey.Dev)
	assert.Equal(t, "http://from-file:1", cfg.Endpoint.URL, "unset flags keep config values")
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	printStatus(&buf, nil, 120, "", "http://localhost:8080")
	assert.Equal(t, "No test in progress.\nNo result submitted yet.\n", buf.String())

	buf.Reset()
	snap := &survey.Snapshot{
		Answers:              make([]survey.Answer, 30),
		CurrentQuestionIndex: 30,
	}
	printStatus(&buf, snap, 120, "abc", "http://localhost:8080/")
	out := buf.String()
	assert.Contains(t, out, "30/120 answered (25%), at question 31")
	assert.Contains(t, out, "Last result: abc")
	assert.Contains(t, out, "http://localhost:8080/result/abc")
}

func TestSummarizeBank(t *testing.T) {
	bank, err := questions.Embedded()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, summarizeBank(&buf, bank))
	out := buf.String()
	assert.Contains(t, out, "120 questions")
	for _, d := range questions.Domains {
		assert.Contains(t, out, d.Name)
	}
}

func TestSummarizeBankMissingDomain(t *testing.T) {
	bank := &questions.Bank{ID: "tiny", Questions: []questions.Question{
		{ID: "q1", Domain: "N", Facet: 1, Keyed: questions.KeyedPlus},
		{ID: "q2", Domain: "N", Facet: 2, Keyed: questions.KeyedMinus},
	}}

	var buf bytes.Buffer
	require.NoError(t, summarizeBank(&buf, bank))
	assert.Regexp(t, `Neuroticism \(N\)\s+2\s+2\s+1\s+1`, buf.String())
	assert.Regexp(t, `Extraversion \(E\)\s+0\s+0\s+0\s+0`, buf.String())
}
