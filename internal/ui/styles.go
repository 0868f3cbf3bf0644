package ui

import "github.com/charmbracelet/lipgloss"

var (
	purple = lipgloss.Color("#A855F7")
	blue   = lipgloss.Color("#3B82F6")
	red    = lipgloss.Color("#F87171")
	green  = lipgloss.Color("#4ADE80")
	yellow = lipgloss.Color("#FDE68A")
	gray   = lipgloss.Color("#9CA3AF")
)

// Styles groups the lipgloss styles used by the form
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Label      lipgloss.Style
	Muted      lipgloss.Style
	Busy       lipgloss.Style
	ErrorBox   lipgloss.Style
	Fake       lipgloss.Style
	Credible   lipgloss.Style
	MeterLabel lipgloss.Style
	Section    lipgloss.Style
	Panel      lipgloss.Style
	Note       lipgloss.Style
}

// DefaultStyles returns the dark palette
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(purple),
		Subtitle:   lipgloss.NewStyle().Foreground(gray),
		Label:      lipgloss.NewStyle().Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(gray),
		Busy:       lipgloss.NewStyle().Foreground(blue),
		ErrorBox:   lipgloss.NewStyle().Foreground(red).Border(lipgloss.RoundedBorder()).BorderForeground(red).Padding(0, 1),
		Fake:       lipgloss.NewStyle().Bold(true).Foreground(red),
		Credible:   lipgloss.NewStyle().Bold(true).Foreground(green),
		MeterLabel: lipgloss.NewStyle().Bold(true),
		Section:    lipgloss.NewStyle().Bold(true).Underline(true),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(blue).Padding(0, 1),
		Note:       lipgloss.NewStyle().Foreground(yellow),
	}
}

// Frame wraps the whole screen
var Frame = lipgloss.NewStyle().Padding(1, 2)
