package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StyleGrass is used for the launch banner
var StyleGrass = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFF")).
	Background(lipgloss.Color("#5d9c3a")).
	Padding(0, 1)

var styleErrBox = lipgloss.NewStyle().
	Width(80).
	MarginTop(1).
	Bold(true).
	Background(lipgloss.AdaptiveColor{Light: "#ffcdd2", Dark: "#512222"}).
	Foreground(lipgloss.AdaptiveColor{Light: "#b71c1c", Dark: "#fa8a8a"}).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderLeftForeground(lipgloss.Color("#f86262")).
	Padding(1, 2)

var styleHelpBox = lipgloss.NewStyle().
	Width(80).
	Background(lipgloss.AdaptiveColor{Light: "#e9e9e9", Dark: "#2f2f2f"}).
	Padding(0, 2).
	Margin(0, 1).
	PaddingTop(1)

var styleErrText = lipgloss.NewStyle().Width(62)

// ErrorBox renders errorString (and helpText below it) in a red box
func ErrorBox(errorString string, helpText string) string {
	text := fmt.Sprintf("Error: %s", errorString)
	if helpText != "" {
		text += "\n\n" + Emoji("❔ ") + helpText
	}
	return styleErrBox.Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top, Emoji("❗ "),
			styleErrText.Render(text),
		),
	)
}
