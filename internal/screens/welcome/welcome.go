package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bigfive/internal/router"
	"github.com/abhisek/bigfive/internal/screen"
	"github.com/abhisek/bigfive/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

type tickMsg time.Time

// Info describes the test shown on the intro.
type Info struct {
	Questions int
	Restored  bool
}

// WelcomeScreen introduces the test before transitioning to the survey.
type WelcomeScreen struct {
	info         Info
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(info Info, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		info: info,
		next: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width)}

	if w.elapsed >= phase1End {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("A personality inventory based on the IPIP-NEO"))
	}

	if w.elapsed >= phase2End {
		lines := []string{
			fmt.Sprintf("%d statements, about 10 to 15 minutes.", w.info.Questions),
			"Describe yourself as you generally are now,",
			"not as you wish to be in the future.",
		}
		if w.info.Restored {
			lines = append(lines, "", "Your unfinished test will be restored.")
		}
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).
				Render(strings.Join(lines, "\n")))
	}

	sections = append(sections, "",
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press any key to begin"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
