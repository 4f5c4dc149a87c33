package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/showdown/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// renderCards renders cards with suit symbols, red suits highlighted.
func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit.IsRed() {
			parts[i] = redSuitStyle.Render(c.Pretty())
		} else {
			parts[i] = c.Pretty()
		}
	}
	return strings.Join(parts, " ")
}
