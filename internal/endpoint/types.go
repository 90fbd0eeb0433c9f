// Package endpoint is the HTTP client for the results service.
package endpoint

import (
	"time"

	"github.com/abhisek/bigfive/internal/scoring"
	"github.com/abhisek/bigfive/internal/survey"
)

// Paths served by the results service.
const (
	ResultsPath = "/api/results"
)

// Result is a stored submission together with its computed scores.
type Result struct {
	ID          string          `json:"id"`
	TestID      string          `json:"testId"`
	Lang        string          `json:"lang"`
	Invalid     bool            `json:"invalid"`
	TimeElapsed int             `json:"timeElapsed"`
	DateStamp   time.Time       `json:"dateStamp"`
	Answers     []survey.Answer `json:"answers"`
	Scores      scoring.Scores  `json:"scores"`
}

// NewResult builds the stored form of req under id and scores its answers.
func NewResult(id string, req survey.SubmitRequest) Result {
	answers := req.Answers
	if answers == nil {
		answers = []survey.Answer{}
	}
	return Result{
		ID:          id,
		TestID:      req.TestID,
		Lang:        req.Lang,
		Invalid:     req.Invalid,
		TimeElapsed: req.TimeElapsed,
		DateStamp:   req.DateStamp.UTC(),
		Answers:     answers,
		Scores:      scoring.Score(answers),
	}
}
