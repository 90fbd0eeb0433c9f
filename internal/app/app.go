package app

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/bigfive/internal/router"
	"github.com/abhisek/bigfive/internal/screen"
	"github.com/abhisek/bigfive/internal/screens/result"
	surveyscreen "github.com/abhisek/bigfive/internal/screens/survey"
	"github.com/abhisek/bigfive/internal/screens/welcome"
	"github.com/abhisek/bigfive/internal/survey"
	"github.com/abhisek/bigfive/internal/ui/layout"
)

// resultRoute is the navigation prefix handled by the result screen.
const resultRoute = "/result/"

// Options holds the dependencies of the TUI.
type Options struct {
	// Controller drives the survey. Required unless ResultID is set.
	Controller *survey.Controller
	Submitter  survey.Submitter
	Fetcher    result.Fetcher
	Logger     *zap.Logger

	// Restored is shown on the intro when saved progress was loaded.
	Restored bool
	// ResultID opens the result screen directly.
	ResultID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model, starting at the intro or, with
// opts.ResultID, at that result.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var initial screen.Screen
	if opts.ResultID != "" {
		initial = result.New(opts.ResultID, opts.Fetcher)
	} else {
		info := welcome.Info{
			Questions: len(opts.Controller.Questions()),
			Restored:  opts.Restored,
		}
		initial = welcome.New(info, func() screen.Screen {
			return surveyscreen.New(opts.Controller, opts.Submitter, opts.Logger)
		})
	}

	r := router.New(initial)
	r.Handle(resultRoute, func(id string) screen.Screen {
		opts.Logger.Info("showing result", zap.String("result_id", id))
		return result.New(id, opts.Fetcher)
	})
	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}

	case router.PushScreenMsg, router.ReplaceScreenMsg, router.NavigateMsg:
		// New screens have not seen the current size yet.
		return m, tea.Batch(m.router.Update(msg), m.resize())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) resize() tea.Cmd {
	if m.width == 0 && m.height == 0 {
		return nil
	}
	w, h := m.width, m.height
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: w, Height: h}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Controller == nil && opts.ResultID == "" {
		return errors.New("app: a survey controller or result id is required")
	}
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
