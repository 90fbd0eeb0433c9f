package survey

import "errors"

var (
	// ErrBusy is returned when input arrives while a page transition or
	// submission is in progress.
	ErrBusy = errors.New("survey is busy")

	// ErrInvalidScore is returned when an answer value is not an integer.
	ErrInvalidScore = errors.New("invalid answer score")

	// ErrIncomplete is returned when submitting before every question is answered.
	ErrIncomplete = errors.New("survey is not complete")

	// ErrSubmitInFlight is returned when a submission is already outstanding.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrAlreadySubmitted is returned after a successful submission.
	ErrAlreadySubmitted = errors.New("survey already submitted")

	// ErrMissingResultID is returned when the endpoint replies without an id.
	ErrMissingResultID = errors.New("response has no result id")

	// ErrDevOnly is returned by developer shortcuts outside dev mode.
	ErrDevOnly = errors.New("only available in dev mode")
)

// AlertSubmitFailed is the blocking message shown after a failed submission.
const AlertSubmitFailed = "Error getting your results. Please try again."
