package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the task manager window. All
// colors use lipgloss ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Accent is used for the window title, focused labels and buttons.
	Accent           lipgloss.Color
	AccentForeground lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color

	Expired lipgloss.Color
	Warning lipgloss.Color

	DialogForeground lipgloss.Color
	DialogBackground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	Accent:           lipgloss.Color("32"),
	AccentForeground: lipgloss.Color("255"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),

	Expired: lipgloss.Color("196"),
	Warning: lipgloss.Color("220"),

	DialogForeground: lipgloss.Color("252"),
	DialogBackground: lipgloss.Color("237"),
}
