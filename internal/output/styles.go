package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: platform ids, paths, keys.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for successful completion messages.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and modified content.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for failures.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (platform ids, manifest paths, keys).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSuccess styles successful completion lines.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleWarning styles warnings and modified content.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError styles failure lines.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleDim styles structural chrome (scope prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
