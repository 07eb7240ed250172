package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, tag names, stage names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "patched" and "generated" file statuses
	// (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "updated" file status (medium visibility).
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for removals in diff output.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (file paths, tags, extension names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (patching, probing, assembling).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status constants.
const (
	StatusPatched   = "patched"
	StatusGenerated = "generated"
	StatusUpdated   = "updated"
	StatusUnchanged = "unchanged"
	StatusSkipped   = "skipped"
	StatusValid     = "valid"
	StatusFailed    = "failed"
)

// StatusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusPatched, StatusGenerated, StatusValid:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusUpdated:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged, StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFileColumnWidth is the minimum width for the file path column before
// the status suffix. This ensures status words align consistently.
const minFileColumnWidth = 48

// FormatFileLine renders a vendor-relative file path with a right-aligned,
// color-coded status suffix.
//
// Format: f:<path>  <status>
//
// The "f:" prefix is dim, the path is cyan, and the status uses StatusStyle.
func FormatFileLine(path, status string) string {
	padding := minFileColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("f:")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// minVetLabelWidth is the minimum width for the check label column before
// the detail suffix in vet output.
const minVetLabelWidth = 28

// FormatVetCheck renders a passed vet check with an optional aligned detail.
//
// Format: ✔ <label>  <detail>
func FormatVetCheck(label, detail string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	if detail == "" {
		return check + " " + label
	}

	padding := minVetLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}

	return check + " " + label + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}

// FormatStageLine renders an update stage announcement.
//
// Format: ▸ <stage>  <detail>
func FormatStageLine(stage, detail string) string {
	bullet := StyleDim.Render("▸")
	styledStage := StyleAction.Render(stage)
	if detail == "" {
		return bullet + " " + styledStage
	}
	return bullet + " " + styledStage + " " + StyleDim.Render(detail)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
