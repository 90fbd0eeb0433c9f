// Package result shows a submitted result's domain and facet scores.
package result

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/screen"
	"github.com/abhisek/bigfive/internal/scoring"
	"github.com/abhisek/bigfive/internal/survey"
	"github.com/abhisek/bigfive/internal/ui/components"
	"github.com/abhisek/bigfive/internal/ui/layout"
	"github.com/abhisek/bigfive/internal/ui/theme"
)

// Fetcher loads a stored result by id.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (*endpoint.Result, error)
}

type resultLoadedMsg struct {
	Result *endpoint.Result
	Err    error
}

// ResultScreen fetches and renders one result.
type ResultScreen struct {
	id         string
	fetcher    Fetcher
	result     *endpoint.Result
	err        error
	loading    bool
	showFacets bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for result id.
func New(id string, fetcher Fetcher) *ResultScreen {
	return &ResultScreen{id: id, fetcher: fetcher}
}

func (r *ResultScreen) Init() tea.Cmd {
	return r.fetch()
}

func (r *ResultScreen) Title() string {
	return "Your Results"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "F", Description: "Facets"}}
	if r.err != nil {
		hints = []layout.KeyHint{{Key: "R", Description: "Retry"}}
	}
	return append(hints, layout.KeyHint{Key: "Q", Description: "Quit"})
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultLoadedMsg:
		r.loading = false
		r.result, r.err = msg.Result, msg.Err
		return r, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q":
			return r, tea.Quit
		case "f":
			r.showFacets = !r.showFacets
		case "r":
			if r.err != nil && !r.loading {
				return r, r.fetch()
			}
		}
	}
	return r, nil
}

func (r *ResultScreen) fetch() tea.Cmd {
	if r.fetcher == nil {
		r.err = fmt.Errorf("no results endpoint configured")
		return nil
	}
	r.loading = true
	r.err = nil
	id, fetcher := r.id, r.fetcher
	return func() tea.Msg {
		res, err := fetcher.Fetch(context.Background(), id)
		return resultLoadedMsg{Result: res, Err: err}
	}
}

func (r *ResultScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch {
	case r.loading:
		return center.Foreground(theme.TextDim).Render("\n\nLoading...")
	case r.err != nil:
		return center.Foreground(theme.Error).Render("\n\nCould not load result " + r.id + "\n\n" + r.err.Error())
	case r.result == nil:
		return ""
	}

	res := r.result
	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Your Big Five profile"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%s   taken %s   %d answers   id %s",
		res.DateStamp.Local().Format("2006-01-02 15:04"),
		survey.FormatElapsed(time.Duration(res.TimeElapsed)*time.Second),
		len(res.Answers),
		res.ID,
	)))
	b.WriteString("\n\n")

	barWidth := min(width-8, 80)
	for _, d := range res.Scores {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, domainBar(d, barWidth)))
		b.WriteString("\n")
		if r.showFacets {
			for _, f := range d.Facets {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, facetBar(f, barWidth)))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

const labelWidth = 22

func domainBar(d scoring.DomainScore, width int) string {
	name := d.Name
	if name == "" {
		name = d.Domain
	}
	bar := components.ProgressBar{
		Label:   padLabel(name),
		Percent: scaled(d.Result),
		Width:   width,
		Fill:    levelColor(d.Level),
		Suffix:  fmt.Sprintf("%.1f %-7s", d.Result, d.Level),
	}
	return bar.View()
}

func facetBar(f scoring.FacetScore, width int) string {
	name := f.Name
	if name == "" {
		name = fmt.Sprintf("Facet %d", f.Facet)
	}
	bar := components.ProgressBar{
		Label:   padLabel("  " + name),
		Percent: scaled(f.Result),
		Width:   width,
		Fill:    theme.Border,
		Suffix:  fmt.Sprintf("%.1f %-7s", f.Result, f.Level),
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(bar.View())
}

func padLabel(s string) string {
	if w := lipgloss.Width(s); w < labelWidth {
		return s + strings.Repeat(" ", labelWidth-w)
	}
	return s
}

// scaled maps a 1-5 mean onto 0-1.
func scaled(mean float64) float64 {
	return max(0, min(1, (mean-1)/4))
}

func levelColor(l scoring.Level) color.Color {
	switch l {
	case scoring.LevelHigh:
		return theme.Success
	case scoring.LevelLow:
		return theme.Accent
	default:
		return theme.Secondary
	}
}
