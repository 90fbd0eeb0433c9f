// Package survey is the screen that walks the respondent through the
// inventory one page at a time.
package survey

import (
	"context"
	"errors"
	"strconv"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/router"
	"github.com/abhisek/bigfive/internal/screen"
	flow "github.com/abhisek/bigfive/internal/survey"
)

// scrollStep is the number of lines moved per scroll key.
const scrollStep = 5

var errNoSubmitter = errors.New("no results endpoint configured")

// SurveyScreen renders the active page of a flow.Controller and feeds key
// presses back into it. It is the controller's Scroller and Navigator.
type SurveyScreen struct {
	ctrl      *flow.Controller
	submitter flow.Submitter
	log       *zap.Logger
	keys      keyMap

	focus  int // question index within the page
	cursor int // highlighted choice of the focused question

	offset    int
	maxOffset int

	pendingNav string
}

var _ screen.Screen = (*SurveyScreen)(nil)
var _ screen.KeyHintProvider = (*SurveyScreen)(nil)
var _ screen.StatusProvider = (*SurveyScreen)(nil)
var _ flow.Scroller = (*SurveyScreen)(nil)
var _ flow.Navigator = (*SurveyScreen)(nil)

// New creates a SurveyScreen driving ctrl. Submissions go to submitter.
func New(ctrl *flow.Controller, submitter flow.Submitter, log *zap.Logger) *SurveyScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &SurveyScreen{
		ctrl:      ctrl,
		submitter: submitter,
		log:       log,
		keys:      defaultKeyMap(),
	}
	ctrl.SetScroller(s)
	ctrl.SetNavigator(s)
	s.resetFocus()
	return s
}

func (s *SurveyScreen) Init() tea.Cmd {
	s.ctrl.StartTimer()
	return tickCmd()
}

func (s *SurveyScreen) Title() string {
	return "Personality Test"
}

// ScrollToTop resets the scroll offset.
func (s *SurveyScreen) ScrollToTop() {
	s.offset = 0
}

// Navigate records path; the router is told once the current update ends.
func (s *SurveyScreen) Navigate(path string) {
	s.pendingNav = path
}

func (s *SurveyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.ctrl.SetViewportWidth(msg.Width)
		s.clampFocus()
		return s, nil

	case timerTickMsg:
		if s.ctrl.Phase() == flow.PhaseDone {
			return s, nil
		}
		return s, tickCmd()

	case transitionDoneMsg:
		s.ctrl.FinishTransition(context.Background(), msg.seq)
		s.resetFocus()
		return s, nil

	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SurveyScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	// The alert is modal.
	if s.ctrl.Alert() != "" {
		if key.Matches(msg, s.keys.DismissAlert) {
			s.ctrl.DismissAlert()
		}
		return s, nil
	}

	if s.ctrl.Restored() {
		switch {
		case key.Matches(msg, s.keys.Reset):
			if err := s.ctrl.ResetAll(ctx); err != nil {
				s.log.Warn("reset survey", zap.Error(err))
			}
			s.resetFocus()
			return s, nil
		case key.Matches(msg, s.keys.Close):
			s.ctrl.DismissRestored()
			return s, nil
		}
	}

	page := s.ctrl.CurrentQuestions()

	switch {
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.Down):
		if s.focus < len(page) && s.cursor < len(choicesFor(page[s.focus]))-1 {
			s.cursor++
		}
	case key.Matches(msg, s.keys.NextQuestion):
		if len(page) > 0 {
			s.focus = (s.focus + 1) % len(page)
			s.cursor = s.cursorFor(page[s.focus])
		}
	case key.Matches(msg, s.keys.Choose):
		return s.answer(int(msg.String()[0] - '1'))
	case key.Matches(msg, s.keys.Select):
		return s.answer(s.cursor)
	case key.Matches(msg, s.keys.Back):
		if s.ctrl.RetreatPage() {
			s.resetFocus()
		}
	case key.Matches(msg, s.keys.Next):
		if s.ctrl.AdvancePage() {
			s.resetFocus()
		}
	case key.Matches(msg, s.keys.Submit):
		if s.ctrl.State() == flow.StateReadyToSubmit {
			return s, s.submit()
		}
	case key.Matches(msg, s.keys.SkipToEnd):
		if err := s.ctrl.SkipToEnd(ctx); err != nil {
			s.log.Debug("skip to end refused", zap.Error(err))
			return s, nil
		}
		s.resetFocus()
	case key.Matches(msg, s.keys.ScrollUp):
		s.offset = max(0, s.offset-scrollStep)
	case key.Matches(msg, s.keys.ScrollDown):
		s.offset = min(s.maxOffset, s.offset+scrollStep)
	}
	return s, nil
}

// answer records choice idx for the focused question.
func (s *SurveyScreen) answer(idx int) (screen.Screen, tea.Cmd) {
	page := s.ctrl.CurrentQuestions()
	if s.focus >= len(page) {
		return s, nil
	}
	q := page[s.focus]
	choices := choicesFor(q)
	if idx < 0 || idx >= len(choices) {
		return s, nil
	}

	tr, err := s.ctrl.RecordAnswer(context.Background(), q.ID, strconv.Itoa(choices[idx].Score))
	if err != nil {
		s.log.Debug("answer refused", zap.String("question_id", q.ID), zap.Error(err))
		return s, nil
	}
	s.cursor = idx

	if tr.Advance {
		seq := tr.Seq
		return s, tea.Tick(tr.After, func(time.Time) tea.Msg {
			return transitionDoneMsg{seq: seq}
		})
	}
	if s.focus < len(page)-1 {
		s.focus++
		s.cursor = s.cursorFor(page[s.focus])
	}
	return s, nil
}

// submit starts a submission. The request runs off the update loop; its
// outcome comes back as a submitDoneMsg.
func (s *SurveyScreen) submit() tea.Cmd {
	req, err := s.ctrl.BeginSubmit()
	if err != nil {
		s.log.Debug("submit refused", zap.Error(err))
		return nil
	}
	submitter := s.submitter
	return func() tea.Msg {
		if submitter == nil {
			return submitDoneMsg{Err: errNoSubmitter}
		}
		resp, err := submitter.Submit(context.Background(), req)
		return submitDoneMsg{Resp: resp, Err: err}
	}
}

func (s *SurveyScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	// Failures are logged by the controller and surface as the alert.
	_ = s.ctrl.FinishSubmit(context.Background(), msg.Resp, msg.Err)

	if s.pendingNav == "" {
		return s, nil
	}
	path := s.pendingNav
	s.pendingNav = ""
	return s, func() tea.Msg {
		return router.NavigateMsg{Path: path}
	}
}

func (s *SurveyScreen) resetFocus() {
	s.focus = 0
	page := s.ctrl.CurrentQuestions()
	if len(page) == 0 {
		s.cursor = 0
		return
	}
	s.cursor = s.cursorFor(page[0])
}

func (s *SurveyScreen) clampFocus() {
	page := s.ctrl.CurrentQuestions()
	if s.focus >= len(page) {
		s.resetFocus()
	}
}

// cursorFor highlights the recorded answer, or the neutral midpoint.
func (s *SurveyScreen) cursorFor(q questions.Question) int {
	choices := choicesFor(q)
	if a, ok := s.ctrl.AnswerFor(q.ID); ok {
		for i, c := range choices {
			if c.Score == a.Score {
				return i
			}
		}
	}
	return len(choices) / 2
}

func choicesFor(q questions.Question) []questions.Choice {
	if len(q.Choices) > 0 {
		return q.Choices
	}
	return questions.DefaultChoices(q.Keyed)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
