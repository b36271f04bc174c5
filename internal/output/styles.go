package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: directories, template ids, managers.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for warnings in the summary.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleCommand styles shell commands the user is told to run.
	StyleCommand = lipgloss.NewStyle().Bold(true)

	// StyleDim styles secondary text such as template descriptions.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleWarning styles warning bullets in the summary.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleSummary styles completion and summary headings.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNextSteps renders a numbered list of shell commands.
func FormatNextSteps(steps []string) string {
	var b strings.Builder
	for i, s := range steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, StyleCommand.Render(s))
	}
	return b.String()
}

// FormatWarnings renders warning bullets, one per line.
func FormatWarnings(warnings []string) string {
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString("  - ")
		b.WriteString(StyleWarning.Render(w))
		b.WriteString("\n")
	}
	return b.String()
}
