package questions

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedBank(t *testing.T) {
	bank, err := Embedded()
	require.NoError(t, err)

	assert.Equal(t, "b5-120", bank.ID)
	assert.Equal(t, "en", bank.Lang)
	require.Len(t, bank.Questions, 120)

	ids := make(map[string]bool)
	facets := make(map[string]int)
	for i, q := range bank.Questions {
		assert.False(t, ids[q.ID], "duplicate id %s", q.ID)
		ids[q.ID] = true
		assert.Equal(t, i+1, q.Num)
		assert.Len(t, q.Choices, 5)
		facets[q.Domain+string(rune('0'+q.Facet))]++
	}

	assert.Len(t, facets, 30)
	for key, n := range facets {
		assert.Equal(t, 4, n, "facet %s", key)
	}
}

func TestEmbeddedBank_FirstQuestion(t *testing.T) {
	bank, err := Embedded()
	require.NoError(t, err)

	q, ok := bank.ByID("q1")
	require.True(t, ok)
	assert.Equal(t, "N", q.Domain)
	assert.Equal(t, 1, q.Facet)
	assert.Equal(t, KeyedPlus, q.Keyed)
}

func TestDefaultChoices(t *testing.T) {
	plus := DefaultChoices(KeyedPlus)
	minus := DefaultChoices(KeyedMinus)

	require.Len(t, plus, 5)
	require.Len(t, minus, 5)
	for i := range plus {
		assert.Equal(t, i+1, plus[i].Score)
		assert.Equal(t, 5-i, minus[i].Score)
		assert.Equal(t, plus[i].Text, minus[i].Text)
		assert.Equal(t, i+1, minus[i].Color)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "{{{"},
		{"missing questions", "id: x\nversion: v1.0.0\n"},
		{"bad domain", "id: x\nversion: v1.0.0\nquestions:\n  - {id: a, text: t, keyed: plus, domain: Z, facet: 1}\n"},
		{"facet out of range", "id: x\nversion: v1.0.0\nquestions:\n  - {id: a, text: t, keyed: plus, domain: N, facet: 9}\n"},
		{"bad keyed", "id: x\nversion: v1.0.0\nquestions:\n  - {id: a, text: t, keyed: up, domain: N, facet: 1}\n"},
		{"duplicate id", "id: x\nversion: v1.0.0\nquestions:\n  - {id: a, text: t, keyed: plus, domain: N, facet: 1}\n  - {id: a, text: u, keyed: plus, domain: N, facet: 2}\n"},
		{"not semver", "id: x\nversion: one\nquestions:\n  - {id: a, text: t, keyed: plus, domain: N, facet: 1}\n"},
		{"future major", "id: x\nversion: v2.1.0\nquestions:\n  - {id: a, text: t, keyed: plus, domain: N, facet: 1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestParse_VersionError(t *testing.T) {
	_, err := Parse([]byte("id: x\nversion: v2.0.0\nquestions:\n  - {id: a, text: t, keyed: plus, domain: N, facet: 1}\n"))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestParse_JSONWithExplicitChoices(t *testing.T) {
	doc := `{
		"id": "mini",
		"version": "v1.2.0",
		"questions": [
			{"id": "a", "text": "Like cats", "keyed": "plus", "domain": "A", "facet": 6,
			 "choices": [{"text": "No", "score": 1, "color": 1}, {"text": "Yes", "score": 2, "color": 2}]},
			{"id": "b", "text": "Like dogs", "keyed": "minus", "domain": "E", "facet": 2}
		]
	}`
	bank, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, bank.Questions, 2)

	assert.Len(t, bank.Questions[0].Choices, 2)
	assert.Equal(t, 2, bank.Questions[1].Num)
	assert.Equal(t, 5, bank.Questions[1].Choices[0].Score)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	doc := "id: tiny\nversion: v1.0.0\nlang: de\nquestions:\n  - {id: a, text: Sorge mich, keyed: plus, domain: N, facet: 1}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	bank, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "de", bank.Lang)
	assert.Len(t, bank.Questions, 1)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Load(context.Background())
	require.Error(t, err)
}

func TestFacetName(t *testing.T) {
	assert.Equal(t, "Anxiety", FacetName("N", 1))
	assert.Equal(t, "Cautiousness", FacetName("C", 6))
	assert.Equal(t, "", FacetName("C", 7))
	assert.Equal(t, "", FacetName("X", 1))
}
