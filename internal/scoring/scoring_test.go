package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/survey"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		mean float64
		want Level
	}{
		{1, LevelLow},
		{2.49, LevelLow},
		{2.5, LevelNeutral},
		{3, LevelNeutral},
		{3.5, LevelNeutral},
		{3.51, LevelHigh},
		{5, LevelHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.mean), "mean %v", tt.mean)
	}
}

func TestScore_DomainsAndFacets(t *testing.T) {
	answers := []survey.Answer{
		{ID: "q2", Score: 5, Domain: "E", Facet: 1},
		{ID: "q1", Score: 1, Domain: "N", Facet: 1},
		{ID: "q6", Score: 2, Domain: "N", Facet: 2},
		{ID: "q31", Score: 5, Domain: "E", Facet: 1},
	}

	got := Score(answers)
	require.Len(t, got, 2)
	assert.Equal(t, "N", got[0].Domain, "presentation order")
	assert.Equal(t, "E", got[1].Domain)

	n := got[0]
	assert.Equal(t, "Neuroticism", n.Name)
	assert.Equal(t, 3, n.Score)
	assert.Equal(t, 2, n.Count)
	assert.InDelta(t, 1.5, n.Result, 1e-9)
	assert.Equal(t, LevelLow, n.Level)
	require.Len(t, n.Facets, 2)
	assert.Equal(t, FacetScore{Facet: 1, Name: "Anxiety", Score: 1, Count: 1, Result: 1, Level: LevelLow}, n.Facets[0])
	assert.Equal(t, "Anger", n.Facets[1].Name)

	e, ok := got.Domain("E")
	require.True(t, ok)
	assert.Equal(t, 10, e.Score)
	assert.Equal(t, LevelHigh, e.Level)
	require.Len(t, e.Facets, 1)
	assert.Equal(t, 2, e.Facets[0].Count)

	_, ok = got.Domain("O")
	assert.False(t, ok)
}

func TestScore_EmbeddedBankNeutral(t *testing.T) {
	bank, err := questions.Embedded()
	require.NoError(t, err)

	answers := make([]survey.Answer, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		answers = append(answers, survey.Answer{ID: q.ID, Score: 3, Domain: q.Domain, Facet: q.Facet})
	}

	got := Score(answers)
	require.Len(t, got, 5)
	for _, d := range got {
		assert.Equal(t, 24, d.Count, d.Domain)
		assert.Equal(t, 72, d.Score, d.Domain)
		assert.Equal(t, LevelNeutral, d.Level, d.Domain)
		require.Len(t, d.Facets, 6, d.Domain)
		for _, f := range d.Facets {
			assert.Equal(t, 4, f.Count)
			assert.NotEmpty(t, f.Name)
		}
	}
}

func TestScore_Empty(t *testing.T) {
	assert.Empty(t, Score(nil))
}

func TestScore_UnknownDomainLast(t *testing.T) {
	got := Score([]survey.Answer{
		{ID: "x", Score: 4, Domain: "Z", Facet: 1},
		{ID: "q1", Score: 4, Domain: "C", Facet: 1},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "C", got[0].Domain)
	assert.Equal(t, "Z", got[1].Domain)
	assert.Empty(t, got[1].Name)
}
