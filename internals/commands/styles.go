package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StyleGrass is the green highlight used for launch headlines
var StyleGrass = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#7fdc88"})

var styleErrBox = lipgloss.NewStyle().
	Width(76).
	MarginTop(1).
	Bold(true).
	Background(lipgloss.AdaptiveColor{Light: "#ffd4d4", Dark: "#4a1f1f"}).
	Foreground(lipgloss.AdaptiveColor{Light: "#a31515", Dark: "#ff9191"}).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderLeftForeground(lipgloss.Color("#e05555")).
	Padding(1, 2)

var styleHelpBox = lipgloss.NewStyle().
	Width(76).
	Background(lipgloss.AdaptiveColor{Light: "#ececec", Dark: "#333333"}).
	Padding(1, 2, 0, 2).
	Margin(0, 1)

var styleErrText = lipgloss.NewStyle().Width(60)

// ErrorBox renders an error (and optional help text) as a styled box
func ErrorBox(errorString string, helpText string) string {
	rendered := styleErrBox.Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top, Emoji("❗ "),
			styleErrText.Render(fmt.Sprintf("Error: %s", errorString)),
		),
	)
	if helpText != "" {
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(helpText))
	}
	return rendered
}
