package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the menu host key bindings
type KeyMap struct {
	Hub        key.Binding
	Item       key.Binding
	Background key.Binding
	Present    key.Binding
	Dismiss    key.Binding
	Sounds     key.Binding
	ToggleTips key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Hub: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Item: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "select"),
		),
		Background: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "background"),
		),
		Present: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "show"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "hide"),
		),
		Sounds: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sounds"),
		),
		ToggleTips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tips"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns bindings for the footer help line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hub, k.Item, k.Background, k.Present, k.Dismiss, k.Quit}
}

// FullHelp returns all bindings grouped by concern
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Hub, k.Item, k.Background},
		{k.Present, k.Dismiss, k.Sounds},
		{k.ToggleTips, k.Quit, k.ForceQuit},
	}
}
