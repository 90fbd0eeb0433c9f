package components

import (
	"github.com/abhisek/bigfive/internal/ui/theme"
)

// Button is a styled action label. Disabled buttons render dimmed.
type Button struct {
	Label    string
	Key      string
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label, key string, disabled bool) Button {
	return Button{Label: label, Key: key, Disabled: disabled}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label += " (" + b.Key + ")"
	}
	if b.Disabled {
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render(label)
}
