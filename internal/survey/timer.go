package survey

import (
	"fmt"
	"time"
)

// Timer supplies elapsed survey time.
type Timer interface {
	Elapsed() time.Duration
	Reset()
}

// Stopwatch is a Timer measuring monotonic time since its last reset.
type Stopwatch struct {
	now   func() time.Time
	start time.Time
}

// NewStopwatch starts a stopwatch. A nil now uses time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now, start: now()}
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}

func (s *Stopwatch) Reset() {
	s.start = s.now()
}

// FormatElapsed renders d as mm:ss, or h:mm:ss past an hour.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
