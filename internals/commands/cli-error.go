package commands

import (
	"github.com/charmbracelet/lipgloss"
)

// CliError is an error meant for the user, with optional suggestions
// on how to get past it
type CliError struct {
	Text        string
	Suggestions []string
	Help        string
}

func (e *CliError) Error() string {
	return e.Text
}

// RichError renders the error as a styled box, suggestions below it
func (e *CliError) RichError() string {
	rendered := ErrorBox(e.Text, e.Help)
	if len(e.Suggestions) == 0 {
		return rendered
	}

	text := Emoji("📎 ") + "Suggestion:\n"
	if len(e.Suggestions) > 1 {
		text = Emoji("📎 ") + "Suggestions:\n"
	}
	for _, s := range e.Suggestions {
		text += " ⦁ " + s + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(text))
}
