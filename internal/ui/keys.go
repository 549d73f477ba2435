package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the host-level bindings. Scroll and search keys live on the
// console pane.
type keyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Theme        key.Binding
	Clear        key.Binding
	Copy         key.Binding
	ToggleStdout key.Binding
	ToggleStderr key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear output"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy buffer"),
		),
		ToggleStdout: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle stdout capture"),
		),
		ToggleStderr: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle stderr capture"),
		),
	}
}
