package endpoint

import (
	"errors"
	"fmt"

	"github.com/abhisek/bigfive/internal/survey"
)

// ErrMissingID is returned when a submission reply carries no result id.
// It wraps survey.ErrMissingResultID so callers can test for either.
var ErrMissingID = fmt.Errorf("endpoint: %w", survey.ErrMissingResultID)

// ErrNotFound is returned by Fetch when the result does not exist.
var ErrNotFound = errors.New("result not found")

// StatusError reports a non-2xx reply from the results service.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
}
