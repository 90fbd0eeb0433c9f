package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bigfive/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	HeaderHeight = 3
	FooterHeight = 3
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left between header and footer.
func ContentHeight(totalHeight int) int {
	return max(0, totalHeight-HeaderHeight-FooterHeight)
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader renders the app name on the left, the screen title in the
// middle and a status line on the right.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Big Five")
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status) + "  "

	inner := max(0, width-2)
	side := max(lipgloss.Width(left), lipgloss.Width(right))
	middle := max(0, inner-2*side)

	row := lipgloss.PlaceHorizontal(side, lipgloss.Left, left) +
		lipgloss.PlaceHorizontal(middle, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(title)) +
		lipgloss.PlaceHorizontal(side, lipgloss.Right, right)

	return bar(width).Render(row)
}

// RenderFooter renders key hints. When they do not fit, hints are dropped
// from the middle so the first and the last (quit) stay visible.
func RenderFooter(hints []KeyHint, width int) string {
	rendered := make([]string, len(hints))
	for i, h := range hints {
		rendered[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
	}

	const sep = "   "
	content := "  " + strings.Join(rendered, sep)
	for len(rendered) > 2 && lipgloss.Width(content) > width-2 {
		rendered = append(rendered[:len(rendered)-2], rendered[len(rendered)-1])
		content = "  " + strings.Join(rendered, sep)
	}

	return bar(width).Render(content)
}

// RenderFrame stacks header, content and footer. Content is clipped to the
// rows left over.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().
		Width(width).
		Height(rows).
		MaxHeight(rows).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Window returns at most height lines of content starting at line offset.
// The offset is clamped so the last page stays full.
func Window(content string, offset, height int) (string, int) {
	lines := strings.Split(content, "\n")
	if height <= 0 || len(lines) <= height {
		return content, 0
	}
	maxOffset := len(lines) - height
	offset = max(0, min(offset, maxOffset))
	return strings.Join(lines[offset:offset+height], "\n"), offset
}
