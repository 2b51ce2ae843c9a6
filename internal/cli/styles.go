// Package cli renders brewmatch results for the terminal.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Roast palette.
var (
	crema    = lipgloss.Color("#C8874A")
	espresso = lipgloss.Color("#3B2A20")
	mint     = lipgloss.Color("#4ECDC4")
	honey    = lipgloss.Color("#FFE66D")
	cherry   = lipgloss.Color("#FF6B6B")
	oatMilk  = lipgloss.Color("#95E1D3")
	ash      = lipgloss.Color("#666666")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(crema).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(mint)
	warningStyle = lipgloss.NewStyle().Foreground(honey)
	errorStyle   = lipgloss.NewStyle().Foreground(cherry)
	infoStyle    = lipgloss.NewStyle().Foreground(oatMilk)
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(crema)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(espresso).
			Padding(1, 2)

	// SubtitleStyle is used for secondary headings such as a bean's origin line.
	SubtitleStyle = lipgloss.NewStyle().Foreground(ash).MarginBottom(1)

	// SubtleStyle dims reasons and other secondary detail.
	SubtleStyle = lipgloss.NewStyle().Foreground(ash)

	// BoldStyle highlights scores.
	BoldStyle = lipgloss.NewStyle().Bold(true)
)

// ChartIcon prefixes analytics headings.
const ChartIcon = "📊"

const (
	coffeeIcon  = "☕"
	successIcon = "✓"
	errorIcon   = "✗"
	warningIcon = "⚠️"
	infoIcon    = "ℹ️"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return successStyle.Render(successIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return errorStyle.Render(errorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return warningStyle.Render(warningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return infoStyle.Render(infoIcon + " " + message)
}

// FormatTitle formats a title with the coffee cup.
func FormatTitle(title string) string {
	return titleStyle.Render(coffeeIcon + " " + title)
}

// FormatPrompt formats a confirmation prompt.
func FormatPrompt(prompt string) string {
	return promptStyle.Render(prompt + " → ")
}

// RenderBox renders a titled card, one per bean or equipment pick.
func RenderBox(title, content string) string {
	heading := titleStyle.UnsetMargins().Render(title)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, content))
}
