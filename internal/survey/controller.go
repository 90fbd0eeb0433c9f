package survey

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/bigfive/internal/questions"
)

const (
	// DefaultPacing is the pause before auto-advancing to the next question.
	DefaultPacing = 700 * time.Millisecond

	// DefaultWideThreshold is the viewport width (in columns) above which
	// three questions are shown per page.
	DefaultWideThreshold = 100

	// DefaultTestID identifies the 120-item inventory.
	DefaultTestID = "b5-120"

	narrowPageSize = 1
	widePageSize   = 3
)

// Options configures a Controller. Questions and Repo are required.
type Options struct {
	Questions []questions.Question
	Repo      ProgressRepository
	Submitter Submitter
	Navigator Navigator
	Scroller  Scroller
	Timer     Timer
	Logger    *zap.Logger

	TestID        string
	Lang          string
	Pacing        time.Duration
	WideThreshold int
	Dev           bool

	// Now stamps submissions. Defaults to time.Now.
	Now func() time.Time
	// Rand feeds SkipToEnd. Defaults to an unseeded PCG.
	Rand *rand.Rand
}

// Controller drives a paginated survey: it records answers, paces page
// transitions, persists progress and submits the finished answer set.
// It is not safe for concurrent use; all calls must come from a single
// event loop.
type Controller struct {
	questions []questions.Question
	byID      map[string]int

	repo      ProgressRepository
	submitter Submitter
	navigator Navigator
	scroller  Scroller
	timer     Timer
	log       *zap.Logger

	testID        string
	lang          string
	pacing        time.Duration
	wideThreshold int
	dev           bool
	now           func() time.Time
	rnd           *rand.Rand

	currentIndex int
	pageSize     int
	answers      []Answer
	phase        Phase
	restored     bool
	alert        string
	// transitionSeq numbers auto-advances so late pacing ticks are ignored.
	transitionSeq uint64
}

// New creates a Controller over opts.Questions.
func New(opts Options) *Controller {
	c := &Controller{
		questions:     opts.Questions,
		byID:          make(map[string]int, len(opts.Questions)),
		repo:          opts.Repo,
		submitter:     opts.Submitter,
		navigator:     opts.Navigator,
		scroller:      opts.Scroller,
		timer:         opts.Timer,
		log:           opts.Logger,
		testID:        opts.TestID,
		lang:          opts.Lang,
		pacing:        opts.Pacing,
		wideThreshold: opts.WideThreshold,
		dev:           opts.Dev,
		now:           opts.Now,
		rnd:           opts.Rand,
		pageSize:      narrowPageSize,
	}
	for i, q := range opts.Questions {
		c.byID[q.ID] = i
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.timer == nil {
		c.timer = NewStopwatch(nil)
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.rnd == nil {
		c.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.testID == "" {
		c.testID = DefaultTestID
	}
	if c.pacing <= 0 {
		c.pacing = DefaultPacing
	}
	if c.wideThreshold <= 0 {
		c.wideThreshold = DefaultWideThreshold
	}
	return c
}

// SetScroller attaches the viewport scroller after construction.
func (c *Controller) SetScroller(s Scroller) { c.scroller = s }

// SetNavigator attaches the navigator after construction.
func (c *Controller) SetNavigator(n Navigator) { c.navigator = n }

// SetViewportWidth picks the page size for a viewport of the given width.
func (c *Controller) SetViewportWidth(width int) {
	if width > c.wideThreshold {
		c.pageSize = widePageSize
	} else {
		c.pageSize = narrowPageSize
	}
}

// RecordAnswer stores the answer to questionID, replacing any earlier one.
// Unknown question ids are ignored. When a single question is shown per
// page, answering a new question schedules an auto-advance: the returned
// Transition has Advance set and input is refused until FinishTransition.
func (c *Controller) RecordAnswer(ctx context.Context, questionID, value string) (Transition, error) {
	switch c.phase {
	case PhaseTransitioning, PhaseSubmitting, PhaseDone:
		return Transition{}, ErrBusy
	}

	idx, ok := c.byID[questionID]
	if !ok {
		c.log.Debug("answer for unknown question ignored", zap.String("question_id", questionID))
		return Transition{}, nil
	}
	score, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return Transition{}, fmt.Errorf("%w: %q", ErrInvalidScore, value)
	}

	q := c.questions[idx]
	latestID := c.latestAnswerID()

	next := make([]Answer, 0, len(c.answers)+1)
	for _, a := range c.answers {
		if a.ID != questionID {
			next = append(next, a)
		}
	}
	c.answers = append(next, Answer{
		ID:     questionID,
		Score:  score,
		Domain: q.Domain,
		Facet:  q.Facet,
	})

	var tr Transition
	if c.pageSize == narrowPageSize && !c.IsComplete() && questionID != latestID {
		c.phase = PhaseTransitioning
		c.transitionSeq++
		tr = Transition{Advance: true, After: c.pacing, Seq: c.transitionSeq}
	}

	c.persist(ctx)
	return tr, nil
}

// FinishTransition completes the auto-advance numbered seq. It is a no-op
// when no transition is pending or seq belongs to an earlier one.
func (c *Controller) FinishTransition(ctx context.Context, seq uint64) {
	if c.phase != PhaseTransitioning || seq != c.transitionSeq {
		return
	}
	c.currentIndex++
	c.scrollToTop()
	c.phase = PhaseAnswering
	c.persist(ctx)
}

// AdvancePage moves forward one page unless navigation is disabled.
func (c *Controller) AdvancePage() bool {
	if c.NextDisabled() {
		return false
	}
	c.currentIndex += c.pageSize
	c.scrollToTop()
	c.restored = false
	return true
}

// RetreatPage moves back one page unless navigation is disabled.
func (c *Controller) RetreatPage() bool {
	if c.BackDisabled() {
		return false
	}
	c.currentIndex -= c.pageSize
	if c.currentIndex < 0 {
		c.currentIndex = 0
	}
	c.scrollToTop()
	return true
}

// SkipToEnd fills every question but the last with random scores and jumps
// to the last question. Dev mode only.
func (c *Controller) SkipToEnd(ctx context.Context) error {
	if !c.dev {
		return ErrDevOnly
	}
	if c.phase != PhaseAnswering {
		return ErrBusy
	}
	if len(c.questions) == 0 {
		return nil
	}

	answers := make([]Answer, 0, len(c.questions)-1)
	for _, q := range c.questions[:len(c.questions)-1] {
		answers = append(answers, Answer{
			ID:     q.ID,
			Score:  c.rnd.IntN(5) + 1,
			Domain: q.Domain,
			Facet:  q.Facet,
		})
	}
	c.answers = answers
	c.currentIndex = len(c.questions) - 1
	c.persist(ctx)
	return nil
}

// BeginSubmit enters the submitting phase and returns the payload to send.
func (c *Controller) BeginSubmit() (SubmitRequest, error) {
	switch c.phase {
	case PhaseSubmitting:
		return SubmitRequest{}, ErrSubmitInFlight
	case PhaseDone:
		return SubmitRequest{}, ErrAlreadySubmitted
	}
	if !c.IsComplete() {
		return SubmitRequest{}, ErrIncomplete
	}

	c.phase = PhaseSubmitting
	c.alert = ""

	req := SubmitRequest{
		TestID:      c.testID,
		Lang:        c.lang,
		Invalid:     false,
		TimeElapsed: c.ElapsedSeconds(),
		DateStamp:   c.now().UTC(),
		Answers:     c.Answers(),
	}
	c.log.Info("submitting survey",
		zap.String("test_id", req.TestID),
		zap.Int("answers", len(req.Answers)),
		zap.Int("time_elapsed", req.TimeElapsed))
	return req, nil
}

// FinishSubmit applies the endpoint's reply to a submission started with
// BeginSubmit. On success the durable progress is cleared, the result id is
// stored and the navigator is sent to the result. On failure the survey
// returns to the ready state with an alert and all answers intact.
func (c *Controller) FinishSubmit(ctx context.Context, resp *SubmitResponse, err error) error {
	if c.phase != PhaseSubmitting {
		return nil
	}

	if err == nil && (resp == nil || resp.ID == "") {
		err = ErrMissingResultID
	}
	if err != nil {
		c.phase = PhaseAnswering
		c.alert = AlertSubmitFailed
		c.log.Error("submission failed", zap.Error(err))
		return fmt.Errorf("submit survey: %w", err)
	}

	if cerr := c.repo.Clear(ctx); cerr != nil {
		c.log.Warn("clear progress after submit", zap.Error(cerr))
	}
	if serr := c.repo.SaveResultID(ctx, resp.ID); serr != nil {
		c.log.Warn("save result id", zap.Error(serr))
	}

	c.phase = PhaseDone
	c.log.Info("survey submitted", zap.String("result_id", resp.ID))
	if c.navigator != nil {
		c.navigator.Navigate(ResultPath(resp.ID))
	}
	return nil
}

// Submit sends the finished answer set and waits for the reply.
func (c *Controller) Submit(ctx context.Context) error {
	req, err := c.BeginSubmit()
	if err != nil {
		return err
	}
	if c.submitter == nil {
		return c.FinishSubmit(ctx, nil, fmt.Errorf("no submitter configured"))
	}
	resp, err := c.submitter.Submit(ctx, req)
	return c.FinishSubmit(ctx, resp, err)
}

// RestoreIfPresent loads saved progress, if any, and shows the restored
// notice. It reports whether progress was restored.
func (c *Controller) RestoreIfPresent(ctx context.Context) (bool, error) {
	snap, err := c.repo.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load progress: %w", err)
	}
	if snap == nil {
		return false, nil
	}

	c.answers = append([]Answer(nil), snap.Answers...)
	c.currentIndex = snap.CurrentQuestionIndex
	c.restored = true
	c.log.Info("restored progress",
		zap.Int("answers", len(c.answers)),
		zap.Int("index", c.currentIndex))
	return true, nil
}

// ResetAll discards saved progress and returns to the initial state.
func (c *Controller) ResetAll(ctx context.Context) error {
	err := c.repo.Clear(ctx)

	c.answers = nil
	c.currentIndex = 0
	c.phase = PhaseAnswering
	c.transitionSeq++
	c.restored = false
	c.alert = ""
	c.timer.Reset()
	c.scrollToTop()

	if err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

// StartTimer restarts the elapsed-time clock. Call it when the questions
// are first shown so time on the welcome screen is not counted.
func (c *Controller) StartTimer() { c.timer.Reset() }

// DismissRestored hides the restored-progress notice.
func (c *Controller) DismissRestored() { c.restored = false }

// DismissAlert closes the blocking alert.
func (c *Controller) DismissAlert() { c.alert = "" }

// CurrentQuestions returns the questions on the active page.
func (c *Controller) CurrentQuestions() []questions.Question {
	start := c.currentIndex
	if start < 0 {
		start = 0
	}
	if start > len(c.questions) {
		start = len(c.questions)
	}
	end := min(start+c.pageSize, len(c.questions))
	return c.questions[start:end]
}

// IsComplete reports whether every question has an answer.
func (c *Controller) IsComplete() bool {
	return len(c.answers) == len(c.questions)
}

// ProgressPercent returns the share of answered questions, 0-100.
func (c *Controller) ProgressPercent() int {
	if len(c.questions) == 0 {
		return 0
	}
	p := int(math.Round(100 * float64(len(c.answers)) / float64(len(c.questions))))
	return max(0, min(100, p))
}

// NextDisabled reports whether forward navigation is blocked.
func (c *Controller) NextDisabled() bool {
	return c.phase == PhaseTransitioning ||
		c.currentIndex+c.pageSize > len(c.answers) ||
		(c.IsComplete() && c.currentIndex == len(c.questions)-c.pageSize) ||
		c.phase == PhaseSubmitting
}

// BackDisabled reports whether backward navigation is blocked.
func (c *Controller) BackDisabled() bool {
	return c.currentIndex == 0 || c.phase == PhaseSubmitting
}

// InputDisabled reports whether answers are currently refused.
func (c *Controller) InputDisabled() bool {
	return c.phase != PhaseAnswering
}

// AnswerFor returns the recorded answer for a question.
func (c *Controller) AnswerFor(questionID string) (Answer, bool) {
	for _, a := range c.answers {
		if a.ID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// Answers returns a copy of the recorded answers in insertion order.
func (c *Controller) Answers() []Answer {
	out := make([]Answer, len(c.answers))
	copy(out, c.answers)
	return out
}

// State returns the lifecycle state derived from the phase and answers.
func (c *Controller) State() State {
	switch c.phase {
	case PhaseDone:
		return StateDone
	case PhaseSubmitting:
		return StateSubmitting
	}
	if c.IsComplete() {
		return StateReadyToSubmit
	}
	return StateAnswering
}

func (c *Controller) Questions() []questions.Question { return c.questions }
func (c *Controller) CurrentIndex() int                { return c.currentIndex }
func (c *Controller) PageSize() int                    { return c.pageSize }
func (c *Controller) Phase() Phase                     { return c.phase }
func (c *Controller) Restored() bool                   { return c.restored }
func (c *Controller) Alert() string                    { return c.alert }
func (c *Controller) Dev() bool                        { return c.dev }
func (c *Controller) Elapsed() time.Duration           { return c.timer.Elapsed() }

// ElapsedSeconds returns the whole seconds spent on the survey.
func (c *Controller) ElapsedSeconds() int {
	return int(c.timer.Elapsed() / time.Second)
}

func (c *Controller) latestAnswerID() string {
	if len(c.answers) == 0 {
		return ""
	}
	return c.answers[len(c.answers)-1].ID
}

func (c *Controller) scrollToTop() {
	if c.scroller != nil {
		c.scroller.ScrollToTop()
	}
}

// persist writes the current snapshot. Failures are logged; in-memory
// state stays authoritative.
func (c *Controller) persist(ctx context.Context) {
	snap := Snapshot{
		Answers:              c.Answers(),
		CurrentQuestionIndex: c.currentIndex,
	}
	if err := c.repo.Save(ctx, snap); err != nil {
		c.log.Warn("save progress", zap.Error(err))
	}
}
