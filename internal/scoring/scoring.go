// Package scoring turns recorded answers into Big-Five domain and facet scores.
package scoring

import (
	"sort"

	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/survey"
)

// Level buckets a mean score.
type Level string

const (
	LevelLow     Level = "low"
	LevelNeutral Level = "neutral"
	LevelHigh    Level = "high"
)

// Thresholds on the per-item mean. Means strictly between them are neutral.
const (
	LowBelow  = 2.5
	HighAbove = 3.5
)

// LevelFor classifies a mean item score.
func LevelFor(mean float64) Level {
	switch {
	case mean < LowBelow:
		return LevelLow
	case mean > HighAbove:
		return LevelHigh
	default:
		return LevelNeutral
	}
}

// FacetScore aggregates the answers for one facet.
type FacetScore struct {
	Facet  int     `json:"facet"`
	Name   string  `json:"name,omitempty"`
	Score  int     `json:"score"`
	Count  int     `json:"count"`
	Result float64 `json:"result"`
	Level  Level   `json:"level"`
}

// DomainScore aggregates the answers for one domain and its facets.
type DomainScore struct {
	Domain string       `json:"domain"`
	Name   string       `json:"name,omitempty"`
	Score  int          `json:"score"`
	Count  int          `json:"count"`
	Result float64      `json:"result"`
	Level  Level        `json:"level"`
	Facets []FacetScore `json:"facets"`
}

// Scores holds one DomainScore per answered domain, in presentation order.
type Scores []DomainScore

// Domain returns the score for the given domain key.
func (s Scores) Domain(key string) (DomainScore, bool) {
	for _, d := range s {
		if d.Domain == key {
			return d, true
		}
	}
	return DomainScore{}, false
}

type tally struct {
	sum, count int
}

func (t tally) mean() float64 {
	if t.count == 0 {
		return 0
	}
	return float64(t.sum) / float64(t.count)
}

// Score sums answers per domain and facet. Answers for unknown domains are
// kept and ordered after the five standard domains.
func Score(answers []survey.Answer) Scores {
	domains := make(map[string]tally)
	facets := make(map[string]map[int]tally)
	for _, a := range answers {
		d := domains[a.Domain]
		d.sum += a.Score
		d.count++
		domains[a.Domain] = d

		if facets[a.Domain] == nil {
			facets[a.Domain] = make(map[int]tally)
		}
		f := facets[a.Domain][a.Facet]
		f.sum += a.Score
		f.count++
		facets[a.Domain][a.Facet] = f
	}

	keys := make([]string, 0, len(domains))
	for k := range domains {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, oj := domainOrder(keys[i]), domainOrder(keys[j])
		if oi != oj {
			return oi < oj
		}
		return keys[i] < keys[j]
	})

	out := make(Scores, 0, len(keys))
	for _, k := range keys {
		t := domains[k]
		ds := DomainScore{
			Domain: k,
			Score:  t.sum,
			Count:  t.count,
			Result: t.mean(),
			Level:  LevelFor(t.mean()),
		}
		if d, ok := questions.LookupDomain(k); ok {
			ds.Name = d.Name
		}

		nums := make([]int, 0, len(facets[k]))
		for n := range facets[k] {
			nums = append(nums, n)
		}
		sort.Ints(nums)
		for _, n := range nums {
			ft := facets[k][n]
			ds.Facets = append(ds.Facets, FacetScore{
				Facet:  n,
				Name:   questions.FacetName(k, n),
				Score:  ft.sum,
				Count:  ft.count,
				Result: ft.mean(),
				Level:  LevelFor(ft.mean()),
			})
		}
		out = append(out, ds)
	}
	return out
}

func domainOrder(key string) int {
	for i, d := range questions.Domains {
		if d.Key == key {
			return i
		}
	}
	return len(questions.Domains)
}
