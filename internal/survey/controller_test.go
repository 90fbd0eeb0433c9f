package survey

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/abhisek/bigfive/internal/questions"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memRepo is an in-memory ProgressRepository that records every save.
type memRepo struct {
	inProgress bool
	snap       *Snapshot
	saves      []Snapshot
	resultID   string
	clears     int
	saveErr    error
}

func (r *memRepo) Load(context.Context) (*Snapshot, error) {
	if !r.inProgress || r.snap == nil {
		return nil, nil
	}
	s := *r.snap
	return &s, nil
}

func (r *memRepo) Save(_ context.Context, snap Snapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.inProgress = true
	r.snap = &snap
	r.saves = append(r.saves, snap)
	return nil
}

func (r *memRepo) Clear(context.Context) error {
	r.inProgress = false
	r.snap = nil
	r.clears++
	return nil
}

func (r *memRepo) SaveResultID(_ context.Context, id string) error {
	r.resultID = id
	return nil
}

type fakeSubmitter struct {
	resp  *SubmitResponse
	err   error
	calls []SubmitRequest
}

func (f *fakeSubmitter) Submit(_ context.Context, req SubmitRequest) (*SubmitResponse, error) {
	f.calls = append(f.calls, req)
	return f.resp, f.err
}

type fakeNavigator struct {
	paths []string
}

func (f *fakeNavigator) Navigate(path string) { f.paths = append(f.paths, path) }

type countingScroller struct {
	n int
}

func (s *countingScroller) ScrollToTop() { s.n++ }

type fixedTimer struct {
	d      time.Duration
	resets int
}

func (t *fixedTimer) Elapsed() time.Duration { return t.d }
func (t *fixedTimer) Reset()                 { t.resets++; t.d = 0 }

func makeQuestions(n int) []questions.Question {
	domains := []string{"N", "E", "O", "A", "C"}
	qs := make([]questions.Question, n)
	for i := range qs {
		qs[i] = questions.Question{
			ID:      fmt.Sprintf("q%d", i+1),
			Text:    fmt.Sprintf("Question %d", i+1),
			Keyed:   questions.KeyedPlus,
			Domain:  domains[i%len(domains)],
			Facet:   (i/len(domains))%6 + 1,
			Choices: questions.DefaultChoices(questions.KeyedPlus),
			Num:     i + 1,
		}
	}
	return qs
}

type harness struct {
	c      *Controller
	repo   *memRepo
	sub    *fakeSubmitter
	nav    *fakeNavigator
	scroll *countingScroller
	timer  *fixedTimer
}

func newHarness(n int, dev bool) *harness {
	h := &harness{
		repo:   &memRepo{},
		sub:    &fakeSubmitter{},
		nav:    &fakeNavigator{},
		scroll: &countingScroller{},
		timer:  &fixedTimer{d: 95 * time.Second},
	}
	h.c = New(Options{
		Questions: makeQuestions(n),
		Repo:      h.repo,
		Submitter: h.sub,
		Navigator: h.nav,
		Scroller:  h.scroll,
		Timer:     h.timer,
		Lang:      "en",
		Dev:       dev,
		Now:       func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})
	return h
}

// answerAll records an answer for every question, finishing any transitions.
func (h *harness) answerAll(t *testing.T, score int) {
	t.Helper()
	ctx := context.Background()
	for _, q := range h.c.Questions() {
		tr, err := h.c.RecordAnswer(ctx, q.ID, strconv.Itoa(score))
		require.NoError(t, err)
		if tr.Advance {
			h.c.FinishTransition(ctx, tr.Seq)
		}
	}
}

func TestRecordAnswer_AutoAdvanceExample(t *testing.T) {
	h := newHarness(120, false)
	ctx := context.Background()

	tr, err := h.c.RecordAnswer(ctx, "q1", "3")
	require.NoError(t, err)
	assert.Equal(t, Transition{Advance: true, After: DefaultPacing, Seq: 1}, tr)
	assert.Equal(t, PhaseTransitioning, h.c.Phase())
	assert.True(t, h.c.NextDisabled())
	assert.True(t, h.c.InputDisabled())

	_, err = h.c.RecordAnswer(ctx, "q2", "4")
	require.ErrorIs(t, err, ErrBusy)

	h.c.FinishTransition(ctx, tr.Seq)
	assert.Equal(t, 1, h.c.CurrentIndex())
	assert.Equal(t, PhaseAnswering, h.c.Phase())
	assert.Equal(t, 1, h.scroll.n)

	want := Snapshot{
		Answers:              []Answer{{ID: "q1", Score: 3, Domain: "N", Facet: 1}},
		CurrentQuestionIndex: 1,
	}
	if diff := cmp.Diff(want, *h.repo.snap); diff != "" {
		t.Errorf("persisted snapshot mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, h.repo.inProgress)
}

func TestRecordAnswer_PersistsBeforeAdvance(t *testing.T) {
	h := newHarness(10, false)

	_, err := h.c.RecordAnswer(context.Background(), "q1", "2")
	require.NoError(t, err)

	require.Len(t, h.repo.saves, 1)
	assert.Equal(t, 0, h.repo.saves[0].CurrentQuestionIndex)
	assert.Len(t, h.repo.saves[0].Answers, 1)
}

func TestRecordAnswer_ReplacesPriorAnswer(t *testing.T) {
	h := newHarness(10, false)
	h.c.SetViewportWidth(200)
	ctx := context.Background()

	for _, step := range []struct{ id, v string }{
		{"q1", "1"}, {"q2", "2"}, {"q3", "3"}, {"q1", "5"},
	} {
		_, err := h.c.RecordAnswer(ctx, step.id, step.v)
		require.NoError(t, err)
	}

	got := h.c.Answers()
	want := []Answer{
		{ID: "q2", Score: 2, Domain: "E", Facet: 1},
		{ID: "q3", Score: 3, Domain: "O", Facet: 1},
		{ID: "q1", Score: 5, Domain: "N", Facet: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordAnswer_UnknownQuestionIgnored(t *testing.T) {
	h := newHarness(5, false)

	tr, err := h.c.RecordAnswer(context.Background(), "nope", "3")
	require.NoError(t, err)
	assert.False(t, tr.Advance)
	assert.Empty(t, h.c.Answers())
	assert.Empty(t, h.repo.saves)
	assert.Equal(t, PhaseAnswering, h.c.Phase())
}

func TestRecordAnswer_InvalidScore(t *testing.T) {
	h := newHarness(5, false)

	_, err := h.c.RecordAnswer(context.Background(), "q1", "three")
	require.ErrorIs(t, err, ErrInvalidScore)
	assert.Empty(t, h.c.Answers())
}

func TestRecordAnswer_NoAutoAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("wide page", func(t *testing.T) {
		h := newHarness(10, false)
		h.c.SetViewportWidth(150)
		tr, err := h.c.RecordAnswer(ctx, "q1", "3")
		require.NoError(t, err)
		assert.False(t, tr.Advance)
		assert.Equal(t, PhaseAnswering, h.c.Phase())
	})

	t.Run("same as latest answer", func(t *testing.T) {
		h := newHarness(10, false)
		tr, err := h.c.RecordAnswer(ctx, "q1", "3")
		require.NoError(t, err)
		require.True(t, tr.Advance)
		h.c.FinishTransition(ctx, tr.Seq)
		require.True(t, h.c.RetreatPage())

		tr, err = h.c.RecordAnswer(ctx, "q1", "4")
		require.NoError(t, err)
		assert.False(t, tr.Advance)
		assert.Equal(t, 0, h.c.CurrentIndex())
	})

	t.Run("last answer completes the set", func(t *testing.T) {
		h := newHarness(2, false)
		tr, err := h.c.RecordAnswer(ctx, "q1", "3")
		require.NoError(t, err)
		require.True(t, tr.Advance)
		h.c.FinishTransition(ctx, tr.Seq)

		tr, err = h.c.RecordAnswer(ctx, "q2", "3")
		require.NoError(t, err)
		assert.False(t, tr.Advance)
		assert.True(t, h.c.IsComplete())
		assert.Equal(t, StateReadyToSubmit, h.c.State())
	})
}

func TestRecordAnswer_SaveFailureKeepsState(t *testing.T) {
	h := newHarness(5, false)
	h.repo.saveErr = errors.New("disk full")

	_, err := h.c.RecordAnswer(context.Background(), "q1", "3")
	require.NoError(t, err)
	assert.Len(t, h.c.Answers(), 1)
}

func TestFinishTransition_StaleTickAfterReset(t *testing.T) {
	h := newHarness(10, false)
	ctx := context.Background()

	stale, err := h.c.RecordAnswer(ctx, "q1", "3")
	require.NoError(t, err)
	require.True(t, stale.Advance)

	require.NoError(t, h.c.ResetAll(ctx))
	h.c.FinishTransition(ctx, stale.Seq)
	assert.Equal(t, 0, h.c.CurrentIndex(), "tick from before the reset is ignored")

	fresh, err := h.c.RecordAnswer(ctx, "q1", "3")
	require.NoError(t, err)
	require.True(t, fresh.Advance)
	assert.NotEqual(t, stale.Seq, fresh.Seq)

	h.c.FinishTransition(ctx, stale.Seq)
	assert.Equal(t, 0, h.c.CurrentIndex())
	assert.Equal(t, PhaseTransitioning, h.c.Phase(), "the new advance still waits for its own tick")

	h.c.FinishTransition(ctx, fresh.Seq)
	assert.Equal(t, 1, h.c.CurrentIndex())
	assert.Equal(t, PhaseAnswering, h.c.Phase())
}

func TestFinishTransition_NoopWithoutPending(t *testing.T) {
	h := newHarness(5, false)
	h.c.FinishTransition(context.Background(), 0)
	assert.Equal(t, 0, h.c.CurrentIndex())
	assert.Empty(t, h.repo.saves)
}

// Random answer sequences never produce duplicate ids, and progress and
// completion always agree with the answer count.
func TestRecordAnswer_Invariants(t *testing.T) {
	ctx := context.Background()
	rnd := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 50; trial++ {
		n := rnd.IntN(30) + 1
		h := newHarness(n, false)
		if rnd.IntN(2) == 0 {
			h.c.SetViewportWidth(200)
		}
		latest := make(map[string]int)

		for step := 0; step < 80; step++ {
			id := fmt.Sprintf("q%d", rnd.IntN(n+2)+1) // includes unknown ids
			score := rnd.IntN(5) + 1
			tr, err := h.c.RecordAnswer(ctx, id, strconv.Itoa(score))
			require.NoError(t, err)
			if tr.Advance {
				h.c.FinishTransition(ctx, tr.Seq)
			}
			if _, ok := h.c.byID[id]; ok {
				latest[id] = score
			}

			answers := h.c.Answers()
			seen := make(map[string]bool)
			for _, a := range answers {
				require.False(t, seen[a.ID], "duplicate answer %s", a.ID)
				seen[a.ID] = true
				require.Equal(t, latest[a.ID], a.Score)
			}

			p := h.c.ProgressPercent()
			require.GreaterOrEqual(t, p, 0)
			require.LessOrEqual(t, p, 100)
			require.Equal(t, int(math.Round(100*float64(len(answers))/float64(n))), p)
			require.Equal(t, len(answers) == n, h.c.IsComplete())
			require.LessOrEqual(t, len(h.c.CurrentQuestions()), h.c.PageSize())
		}
	}
}

func TestProgressPercent_Empty(t *testing.T) {
	h := newHarness(0, false)
	assert.Equal(t, 0, h.c.ProgressPercent())
	assert.True(t, h.c.IsComplete())
	assert.Empty(t, h.c.CurrentQuestions())
}

func TestSetViewportWidth(t *testing.T) {
	h := newHarness(10, false)
	assert.Equal(t, 1, h.c.PageSize())

	h.c.SetViewportWidth(DefaultWideThreshold + 1)
	assert.Equal(t, 3, h.c.PageSize())
	assert.Len(t, h.c.CurrentQuestions(), 3)

	h.c.SetViewportWidth(DefaultWideThreshold)
	assert.Equal(t, 1, h.c.PageSize())
}

func TestCurrentQuestions_ClampsToBank(t *testing.T) {
	h := newHarness(4, false)
	h.c.SetViewportWidth(200)
	h.c.currentIndex = 3

	got := h.c.CurrentQuestions()
	require.Len(t, got, 1)
	assert.Equal(t, "q4", got[0].ID)
}

func TestNavigation_Guards(t *testing.T) {
	h := newHarness(6, false)
	h.c.SetViewportWidth(200)
	ctx := context.Background()

	assert.True(t, h.c.BackDisabled())
	assert.True(t, h.c.NextDisabled(), "no answers yet")
	assert.False(t, h.c.AdvancePage())
	assert.False(t, h.c.RetreatPage())

	for _, id := range []string{"q1", "q2", "q3"} {
		_, err := h.c.RecordAnswer(ctx, id, "3")
		require.NoError(t, err)
	}
	assert.False(t, h.c.NextDisabled())
	require.True(t, h.c.AdvancePage())
	assert.Equal(t, 3, h.c.CurrentIndex())
	assert.False(t, h.c.BackDisabled())
	assert.True(t, h.c.NextDisabled(), "page 2 unanswered")

	for _, id := range []string{"q4", "q5", "q6"} {
		_, err := h.c.RecordAnswer(ctx, id, "3")
		require.NoError(t, err)
	}
	assert.True(t, h.c.IsComplete())
	assert.True(t, h.c.NextDisabled(), "final page while complete")

	require.True(t, h.c.RetreatPage())
	assert.Equal(t, 0, h.c.CurrentIndex())
	assert.Equal(t, 2, h.scroll.n)
}

func TestRetreatPage_NeverNegative(t *testing.T) {
	h := newHarness(10, false)
	h.c.currentIndex = 1
	h.c.SetViewportWidth(200)

	require.True(t, h.c.RetreatPage())
	assert.Equal(t, 0, h.c.CurrentIndex())
}

func TestAdvancePage_ClearsRestored(t *testing.T) {
	h := newHarness(5, false)
	h.repo.inProgress = true
	h.repo.snap = &Snapshot{
		Answers:              []Answer{{ID: "q1", Score: 2, Domain: "N", Facet: 1}},
		CurrentQuestionIndex: 0,
	}
	ctx := context.Background()

	ok, err := h.c.RestoreIfPresent(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, h.c.Restored())

	require.True(t, h.c.AdvancePage())
	assert.False(t, h.c.Restored())
}

func TestRestoreIfPresent(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot present", func(t *testing.T) {
		h := newHarness(10, false)
		answers := []Answer{
			{ID: "q3", Score: 1, Domain: "O", Facet: 1},
			{ID: "q1", Score: 5, Domain: "N", Facet: 1},
		}
		h.repo.inProgress = true
		h.repo.snap = &Snapshot{Answers: answers, CurrentQuestionIndex: 7}

		ok, err := h.c.RestoreIfPresent(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, h.c.Restored())
		assert.Equal(t, 7, h.c.CurrentIndex())
		if diff := cmp.Diff(answers, h.c.Answers()); diff != "" {
			t.Errorf("restored answers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nothing saved", func(t *testing.T) {
		h := newHarness(10, false)
		ok, err := h.c.RestoreIfPresent(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, h.c.Restored())
	})

	t.Run("dismiss", func(t *testing.T) {
		h := newHarness(10, false)
		h.repo.inProgress = true
		h.repo.snap = &Snapshot{}
		_, err := h.c.RestoreIfPresent(ctx)
		require.NoError(t, err)
		h.c.DismissRestored()
		assert.False(t, h.c.Restored())
	})
}

func TestSubmit_Success(t *testing.T) {
	h := newHarness(5, false)
	h.answerAll(t, 4)
	h.sub.resp = &SubmitResponse{ID: "abc123"}

	require.NoError(t, h.c.Submit(context.Background()))

	require.Len(t, h.sub.calls, 1)
	req := h.sub.calls[0]
	assert.Equal(t, "b5-120", req.TestID)
	assert.Equal(t, "en", req.Lang)
	assert.False(t, req.Invalid)
	assert.Equal(t, 95, req.TimeElapsed)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), req.DateStamp)
	assert.Len(t, req.Answers, 5)

	assert.False(t, h.repo.inProgress)
	assert.Nil(t, h.repo.snap)
	assert.Equal(t, "abc123", h.repo.resultID)
	assert.Equal(t, []string{"/result/abc123"}, h.nav.paths)
	assert.Equal(t, PhaseDone, h.c.Phase())
	assert.Equal(t, StateDone, h.c.State())

	_, err := h.c.RecordAnswer(context.Background(), "q1", "1")
	assert.ErrorIs(t, err, ErrBusy)
	assert.ErrorIs(t, h.c.Submit(context.Background()), ErrAlreadySubmitted)
}

func TestSubmit_MissingID(t *testing.T) {
	h := newHarness(5, false)
	h.answerAll(t, 2)
	before := h.c.Answers()
	h.sub.resp = &SubmitResponse{}

	err := h.c.Submit(context.Background())
	require.ErrorIs(t, err, ErrMissingResultID)

	assert.Equal(t, before, h.c.Answers())
	assert.Equal(t, PhaseAnswering, h.c.Phase())
	assert.Equal(t, StateReadyToSubmit, h.c.State())
	assert.Empty(t, h.nav.paths)
	assert.Equal(t, AlertSubmitFailed, h.c.Alert())
	assert.True(t, h.repo.inProgress, "progress kept for retry")

	h.c.DismissAlert()
	assert.Empty(t, h.c.Alert())
}

func TestSubmit_EndpointError(t *testing.T) {
	h := newHarness(3, false)
	h.answerAll(t, 3)
	h.sub.err = errors.New("connection refused")

	err := h.c.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, AlertSubmitFailed, h.c.Alert())
	assert.Len(t, h.c.Answers(), 3)
	assert.Empty(t, h.nav.paths)

	// A retry after the failure goes through.
	h.sub.err = nil
	h.sub.resp = &SubmitResponse{ID: "r2"}
	require.NoError(t, h.c.Submit(context.Background()))
	assert.Equal(t, []string{"/result/r2"}, h.nav.paths)
	assert.Empty(t, h.c.Alert())
}

func TestBeginSubmit_Guards(t *testing.T) {
	h := newHarness(3, false)

	_, err := h.c.BeginSubmit()
	require.ErrorIs(t, err, ErrIncomplete)

	h.answerAll(t, 3)
	_, err = h.c.BeginSubmit()
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, h.c.State())
	assert.True(t, h.c.BackDisabled())
	assert.True(t, h.c.NextDisabled())

	_, err = h.c.BeginSubmit()
	require.ErrorIs(t, err, ErrSubmitInFlight)

	_, err = h.c.RecordAnswer(context.Background(), "q1", "1")
	require.ErrorIs(t, err, ErrBusy)
}

func TestFinishSubmit_IgnoredOutsideSubmitting(t *testing.T) {
	h := newHarness(3, false)
	err := h.c.FinishSubmit(context.Background(), &SubmitResponse{ID: "x"}, nil)
	require.NoError(t, err)
	assert.Empty(t, h.nav.paths)
	assert.Equal(t, PhaseAnswering, h.c.Phase())
}

func TestSkipToEnd(t *testing.T) {
	ctx := context.Background()

	t.Run("dev mode", func(t *testing.T) {
		h := newHarness(120, true)
		require.NoError(t, h.c.SkipToEnd(ctx))

		answers := h.c.Answers()
		assert.Len(t, answers, 119)
		for _, a := range answers {
			assert.GreaterOrEqual(t, a.Score, 1)
			assert.LessOrEqual(t, a.Score, 5)
		}
		_, ok := h.c.AnswerFor("q120")
		assert.False(t, ok, "last question left unanswered")
		assert.Equal(t, 119, h.c.CurrentIndex())
		assert.False(t, h.c.IsComplete())
		assert.Equal(t, 119, h.repo.snap.CurrentQuestionIndex)

		tr, err := h.c.RecordAnswer(ctx, "q120", "5")
		require.NoError(t, err)
		assert.False(t, tr.Advance)
		assert.True(t, h.c.IsComplete())
	})

	t.Run("production", func(t *testing.T) {
		h := newHarness(10, false)
		require.ErrorIs(t, h.c.SkipToEnd(ctx), ErrDevOnly)
		assert.Empty(t, h.c.Answers())
	})
}

func TestResetAll(t *testing.T) {
	h := newHarness(5, false)
	ctx := context.Background()
	h.c.SetViewportWidth(200)
	for _, id := range []string{"q1", "q2", "q3"} {
		_, err := h.c.RecordAnswer(ctx, id, "3")
		require.NoError(t, err)
	}
	require.True(t, h.c.AdvancePage())

	require.NoError(t, h.c.ResetAll(ctx))

	assert.Empty(t, h.c.Answers())
	assert.Equal(t, 0, h.c.CurrentIndex())
	assert.Equal(t, PhaseAnswering, h.c.Phase())
	assert.False(t, h.c.Restored())
	assert.False(t, h.repo.inProgress)
	assert.Equal(t, 1, h.timer.resets)
	assert.Equal(t, 0, h.c.ElapsedSeconds())
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.d), "duration %v", tt.d)
	}
}

func TestStopwatch(t *testing.T) {
	now := time.Unix(1000, 0)
	sw := NewStopwatch(func() time.Time { return now })

	now = now.Add(42 * time.Second)
	assert.Equal(t, 42*time.Second, sw.Elapsed())

	sw.Reset()
	assert.Equal(t, time.Duration(0), sw.Elapsed())
}
