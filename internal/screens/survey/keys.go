package survey

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextQuestion key.Binding
	Choose       key.Binding
	Select       key.Binding
	Back         key.Binding
	Next         key.Binding
	Submit       key.Binding
	Reset        key.Binding
	Close        key.Binding
	DismissAlert key.Binding
	SkipToEnd    key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		NextQuestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Next item"),
		),
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "Answer"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Answer"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "Back"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "Next"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("S", "See results"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "Start new test"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("X", "Close"),
		),
		DismissAlert: key.NewBinding(
			key.WithKeys("enter", "esc", "x"),
			key.WithHelp("Enter", "OK"),
		),
		SkipToEnd: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("Ctrl+E", "Skip to end"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "Scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "Scroll"),
		),
	}
}
