package survey

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	flow "github.com/abhisek/bigfive/internal/survey"
	"github.com/abhisek/bigfive/internal/ui/components"
	"github.com/abhisek/bigfive/internal/ui/layout"
	"github.com/abhisek/bigfive/internal/ui/theme"
)

// maxCardWidth caps question cards on very wide terminals.
const maxCardWidth = 96

func (s *SurveyScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.Alert() != "" {
		return []layout.KeyHint{hint(s.keys.DismissAlert)}
	}
	if s.ctrl.Phase() == flow.PhaseSubmitting {
		return nil
	}

	hints := []layout.KeyHint{hint(s.keys.Choose), hint(s.keys.Select)}
	if s.ctrl.PageSize() > 1 {
		hints = append(hints, hint(s.keys.NextQuestion))
	}
	if !s.ctrl.BackDisabled() {
		hints = append(hints, hint(s.keys.Back))
	}
	if !s.ctrl.NextDisabled() {
		hints = append(hints, hint(s.keys.Next))
	}
	if s.ctrl.State() == flow.StateReadyToSubmit {
		hints = append(hints, hint(s.keys.Submit))
	}
	if s.ctrl.Restored() {
		hints = append(hints, hint(s.keys.Reset), hint(s.keys.Close))
	}
	if s.ctrl.Dev() {
		hints = append(hints, hint(s.keys.SkipToEnd))
	}
	return hints
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

func (s *SurveyScreen) View(width, height int) string {
	if alert := s.ctrl.Alert(); alert != "" {
		modal := theme.Modal.Render(alert + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press Enter to close"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
	}

	top := s.renderProgress(width)
	if s.ctrl.Phase() == flow.PhaseSubmitting {
		loading := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nLoading...")
		return top + "\n" + loading
	}

	body := s.renderBody(width)
	bodyHeight := max(0, height-lipgloss.Height(top)-1)

	lines := strings.Count(body, "\n") + 1
	s.maxOffset = max(0, lines-bodyHeight)
	visible, offset := layout.Window(body, s.offset, bodyHeight)
	s.offset = offset

	return top + "\n" + visible
}

func (s *SurveyScreen) renderProgress(width int) string {
	answered := len(s.ctrl.Answers())
	total := len(s.ctrl.Questions())
	bar := components.ProgressBar{
		Label:   flow.FormatElapsed(s.ctrl.Elapsed()),
		Percent: float64(s.ctrl.ProgressPercent()) / 100,
		Width:   max(width-4, 20),
		Suffix:  fmt.Sprintf("%d%%  %d/%d", s.ctrl.ProgressPercent(), answered, total),
	}
	return "  " + bar.View()
}

func (s *SurveyScreen) renderBody(width int) string {
	var b strings.Builder
	cardWidth := min(width-4, maxCardWidth)

	if s.ctrl.Restored() {
		notice := theme.Notice.Width(cardWidth).Render(
			"Your previous answers were restored.\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("[r] Start a new test   [x] Close"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, notice))
		b.WriteString("\n")
	}

	if s.ctrl.Dev() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("dev mode: Ctrl+E skips to the last question")))
		b.WriteString("\n")
	}

	page := s.ctrl.CurrentQuestions()
	for i, q := range page {
		chosen := 0
		if a, ok := s.ctrl.AnswerFor(q.ID); ok {
			chosen = a.Score
		}
		card := components.Likert{
			Question: q,
			Cursor:   s.cursor,
			Focused:  i == s.focus,
			Chosen:   chosen,
			Disabled: s.ctrl.InputDisabled(),
			Width:    cardWidth,
		}
		label := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d / %d", q.Num, len(s.ctrl.Questions())))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, label+"\n"+card.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderActions()))
	return b.String()
}

func (s *SurveyScreen) renderActions() string {
	buttons := []string{
		components.NewButton("Back", "←", s.ctrl.BackDisabled()).View(),
		components.NewButton("Next", "→", s.ctrl.NextDisabled()).View(),
	}
	if s.ctrl.IsComplete() {
		ready := s.ctrl.State() == flow.StateReadyToSubmit
		buttons = append(buttons, components.NewButton("See results", "s", !ready).View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

// Status shows answered/total in the header.
func (s *SurveyScreen) Status() string {
	return fmt.Sprintf("%d/%d answered", len(s.ctrl.Answers()), len(s.ctrl.Questions()))
}
