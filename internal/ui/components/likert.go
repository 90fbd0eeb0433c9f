package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/ui/theme"
)

// Likert renders one inventory item with its response scale.
type Likert struct {
	Question questions.Question
	// Cursor is the highlighted choice index, shown only when Focused.
	Cursor  int
	Focused bool
	// Chosen is the recorded score, or 0 when unanswered.
	Chosen   int
	Disabled bool
	Width    int
}

// View renders the item as a bordered card.
func (l Likert) View() string {
	var b strings.Builder

	text := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Width(max(l.Width-8, 20)).
		Render(l.Question.Text)
	b.WriteString(text)
	b.WriteString("\n\n")

	for i, c := range l.choices() {
		prefix := "  "
		if l.Focused && i == l.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if c.Score == l.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d %s %s", prefix, i+1, mark, c.Text)

		style := lipgloss.NewStyle().Foreground(theme.ChoiceColor(c.Color))
		switch {
		case l.Disabled:
			style = style.Foreground(theme.TextDim)
		case l.Focused && i == l.Cursor:
			style = style.Bold(true).Underline(true)
		case c.Score == l.Chosen:
			style = style.Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	card := theme.Card
	if l.Focused {
		card = theme.FocusedCard
	}
	if l.Width > 0 {
		card = card.Width(l.Width)
	}
	return card.Render(strings.TrimRight(b.String(), "\n"))
}

func (l Likert) choices() []questions.Choice {
	if len(l.Question.Choices) > 0 {
		return l.Question.Choices
	}
	return questions.DefaultChoices(l.Question.Keyed)
}
