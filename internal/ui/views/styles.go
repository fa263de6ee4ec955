package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Help        lipgloss.Style
	InfoBox     lipgloss.Style
	Prompt      lipgloss.Style
	Domain      lipgloss.Style
	Snippet     lipgloss.Style
	Suggestion  lipgloss.Style
	Focused     lipgloss.Style
	Marked      lipgloss.Style
	CopyPulse   lipgloss.Style
	Notice      lipgloss.Style
	Chord       lipgloss.Style
	Visual      lipgloss.Style
	StatusError lipgloss.Style
	StatusBar   lipgloss.Style
	HelpTitle   lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:   lipgloss.NewStyle().Faint(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Domain:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Snippet:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // gray
		Suggestion:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		Focused:     lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Marked:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		CopyPulse:   lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("231")),
		Notice:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Chord:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Visual:      lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		HelpSection: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
