package survey

import (
	"time"

	flow "github.com/abhisek/bigfive/internal/survey"
)

// timerTickMsg is sent every second to refresh the elapsed time.
type timerTickMsg time.Time

// transitionDoneMsg is sent when the pacing delay after an answer ends.
type transitionDoneMsg struct{ seq uint64 }

// submitDoneMsg carries the endpoint's reply to a submission.
type submitDoneMsg struct {
	Resp *flow.SubmitResponse
	Err  error
}
