package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the landing screen.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Section     lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardHidden  lipgloss.Style
	CardLabel   lipgloss.Style
	CardValue   lipgloss.Style
	Muted       lipgloss.Style
	Help        lipgloss.Style
	Toast       lipgloss.Style
}

func DefaultStyles() *Styles {
	primary := lipgloss.Color("#2563eb")
	muted := lipgloss.Color("#6b7280")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 2).
		Width(20)

	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtitle:    lipgloss.NewStyle().Foreground(muted),
		Section:     lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1),
		Card:        card,
		CardFocused: card.Border(lipgloss.ThickBorder()).BorderForeground(primary),
		CardHidden:  card.BorderForeground(lipgloss.Color("#374151")).Faint(true),
		CardLabel:   lipgloss.NewStyle().Foreground(muted),
		CardValue:   lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Help:        lipgloss.NewStyle().Foreground(muted).Italic(true),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 2),
	}
}

// ToastStyle returns the toast style coloured for level.
func (s *Styles) ToastStyle(level Level) lipgloss.Style {
	return s.Toast.Background(ColorFor(level))
}
