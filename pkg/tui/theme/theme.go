package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Card   CardTheme
	Toast  ToastTheme
	Footer FooterTheme
}

// HeaderTheme groups styles for the top bar: child name, age, and view tabs.
type HeaderTheme struct {
	Name      lipgloss.Style
	Age       lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Banner    lipgloss.Style
}

// CardTheme styles the framed stat cards and list panels.
type CardTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Value lipgloss.Style
	Label lipgloss.Style
	Faint lipgloss.Style
}

// ToastTheme styles the transient notice line.
type ToastTheme struct {
	Notice lipgloss.Style
	Error  lipgloss.Style
}

// FooterTheme styles the bottom help bar.
type FooterTheme struct {
	Help lipgloss.Style
	Key  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Name: lipgloss.NewStyle().Bold(true),
			Age:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Tab:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
			ActiveTab: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true).
				Padding(0, 1),
			Banner: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true),
		},
		Card: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Value: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Faint: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Toast: ToastTheme{
			Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Footer: FooterTheme{
			Help: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Key:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
	}
}
