package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/josephgoksu/solventdeck/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray

	// Suit accent colors
	ColorSpades   = lipgloss.Color("75")  // Blue for career
	ColorHearts   = lipgloss.Color("204") // Pink for relationships
	ColorDiamonds = lipgloss.Color("220") // Gold for finances
	ColorClubs    = lipgloss.Color("114") // Green for health

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleDone = lipgloss.NewStyle().Foreground(ColorSecondary).Strikethrough(true)

	// Day column box for the week board
	StyleDayBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	// Capacity banner when the plan overshoots the weekly budget
	StyleOverBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StyleSectionTitle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true)

	suitStyles = map[models.Suit]lipgloss.Style{
		models.SuitSpades:   lipgloss.NewStyle().Foreground(ColorSpades),
		models.SuitHearts:   lipgloss.NewStyle().Foreground(ColorHearts),
		models.SuitDiamonds: lipgloss.NewStyle().Foreground(ColorDiamonds),
		models.SuitClubs:    lipgloss.NewStyle().Foreground(ColorClubs),
	}
)

// SuitStyle returns the accent style for a suit, defaulting to the plain
// text style for unknown suits.
func SuitStyle(s models.Suit) lipgloss.Style {
	if st, ok := suitStyles[s]; ok {
		return st
	}
	return StyleText
}

// SuitBadge renders a colored "icon Name" label for a suit.
func SuitBadge(s models.Suit) string {
	meta := models.MetaFor(s)
	return SuitStyle(s).Render(meta.Icon + " " + meta.Name)
}
