package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the visualizer UI.
type KeyMap struct {
	NextTab     key.Binding
	PrevTab     key.Binding
	NextWindow  key.Binding
	PrevWindow  key.Binding
	CloseWindow key.Binding
	CopyTab     key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		NextWindow: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next window"),
		),
		PrevWindow: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous window"),
		),
		CloseWindow: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close window"),
		),
		CopyTab: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}
