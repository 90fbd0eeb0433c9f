package survey

import (
	"context"
	"time"
)

// Answer is the recorded response to one question. At most one Answer per
// question id is held at any time.
type Answer struct {
	ID     string `json:"id"`
	Score  int    `json:"score"`
	Domain string `json:"domain"`
	Facet  int    `json:"facet"`
}

// Snapshot is the in-progress state written to the durable store.
type Snapshot struct {
	Answers              []Answer `json:"answers"`
	CurrentQuestionIndex int      `json:"currentQuestionIndex"`
}

// SubmitRequest is the payload sent to the persistence endpoint.
type SubmitRequest struct {
	TestID      string    `json:"testId"`
	Lang        string    `json:"lang"`
	Invalid     bool      `json:"invalid"`
	TimeElapsed int       `json:"timeElapsed"`
	DateStamp   time.Time `json:"dateStamp"`
	Answers     []Answer  `json:"answers"`
}

// SubmitResponse is the persistence endpoint's reply.
type SubmitResponse struct {
	ID string `json:"id"`
}

// ProgressRepository persists in-progress survey state across restarts.
type ProgressRepository interface {
	// Load returns the saved snapshot, or nil if no survey is in progress.
	Load(ctx context.Context) (*Snapshot, error)

	// Save marks a survey as in progress and stores snap.
	Save(ctx context.Context, snap Snapshot) error

	// Clear removes the in-progress marker and snapshot.
	Clear(ctx context.Context) error

	// SaveResultID records the identifier of the last submitted result.
	SaveResultID(ctx context.Context, id string) error
}

// Submitter sends a finished answer set to the persistence endpoint.
type Submitter interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
}

// Navigator moves the user to another view.
type Navigator interface {
	Navigate(path string)
}

// Scroller resets the visible region to the top of the page.
type Scroller interface {
	ScrollToTop()
}

// Transition tells the caller whether an auto-advance was scheduled by
// RecordAnswer. When Advance is set, FinishTransition must be called with
// Seq once After has elapsed.
type Transition struct {
	Advance bool
	After   time.Duration
	// Seq identifies the scheduled advance. A later answer or a reset makes
	// it stale.
	Seq uint64
}

// ResultPath returns the navigation target for a submitted result.
func ResultPath(id string) string {
	return "/result/" + id
}
