package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the task manager window.
type KeyMap struct {
	// Focus cycling across the three form fields and the table.
	Next     key.Binding
	Previous key.Binding

	// Form.
	Submit key.Binding

	// Deadline picker steps, active while the deadline field has focus.
	HourLater   key.Binding
	HourEarlier key.Binding
	DayLater    key.Binding
	DayEarlier  key.Binding

	// Table.
	Delete key.Binding

	// Dialogs.
	Dismiss key.Binding

	// Menu.
	About key.Binding
	Quit  key.Binding
}

// DefaultKeyMap is the built-in key binding set. Plain letters are
// left to the text inputs, so menu actions use function and control keys.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "add task"),
	),
	HourLater: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "+1 hour"),
	),
	HourEarlier: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "-1 hour"),
	),
	DayLater: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "+1 day"),
	),
	DayEarlier: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "-1 day"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete task"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("Enter", "close"),
	),
	About: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "about"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q", "ctrl+c"),
		key.WithHelp("C-q", "exit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Delete, k.About, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Submit},
		{k.HourLater, k.HourEarlier, k.DayLater, k.DayEarlier},
		{k.Delete, k.About, k.Quit},
	}
}
