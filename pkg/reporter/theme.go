// Package reporter renders runner lifecycle events as human-readable
// terminal output.
package reporter

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Success lipgloss.Style
	Failure lipgloss.Style
	Pending lipgloss.Style
	Muted   lipgloss.Style
	Title   lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass    string
	Fail    string
	Pending string
	Bullet  string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Title:   lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Pass:    "✓",
			Fail:    "✗",
			Pending: "○",
			Bullet:  "·",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Success: lipgloss.NewStyle(),
		Failure: lipgloss.NewStyle(),
		Pending: lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Title:   lipgloss.NewStyle(),
		Icons: ThemeIcons{
			Pass:    "+",
			Fail:    "x",
			Pending: "-",
			Bullet:  "-",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
