package commands

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/minepkg/mclaunch/internals/merrors"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text        string
	Suggestions []string
	Help        string
	// Err is the underlying error, if any
	Err error
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) Unwrap() error { return e.Err }

// RichError renders the error box with all suggestions
func (e *CliError) RichError() string {
	rendered := ErrorBox(e.Text, e.Help)
	if len(e.Suggestions) != 0 {
		suggestionText := "Suggestion:\n"
		if len(e.Suggestions) > 1 {
			suggestionText = "Suggestions:\n"
		}
		suggestionText = Emoji("📎 ") + suggestionText
		for _, s := range e.Suggestions {
			suggestionText += " ⦁ " + s + "\n"
		}
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(suggestionText))
	}
	return rendered
}

// AsCliError turns err into a CliError with suggestions matching the error kind
func AsCliError(err error) *CliError {
	var cliErr *CliError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	wrapped := &CliError{Text: err.Error(), Err: err}
	var checksumErr *merrors.ChecksumError
	switch {
	case errors.As(err, &checksumErr):
		wrapped.Help = "A downloaded file is corrupted or was modified."
		wrapped.Suggestions = []string{
			"Delete " + checksumErr.Path + " and try again",
		}
	case errors.Is(err, merrors.ErrNotFound):
		wrapped.Suggestions = []string{
			"Run \"mclaunch versions\" to see all available versions",
			"Install the version with \"mclaunch install <version>\"",
		}
	case errors.Is(err, merrors.ErrRecursionLimit):
		wrapped.Help = "The manifest inherits from itself or has too many parents."
		wrapped.Suggestions = []string{"Check the \"inheritsFrom\" field of the manifests in your versions directory"}
	case errors.Is(err, merrors.ErrSchema):
		wrapped.Suggestions = []string{"Remove the version manifest with \"mclaunch versions --refresh <version>\" and try again"}
	case errors.Is(err, merrors.ErrPathEscape):
		wrapped.Help = "A manifest tried to write outside of the minecraft directory. It was not installed."
	case errors.Is(err, merrors.ErrTransport):
		wrapped.Suggestions = []string{
			"Check your internet connection",
			"Lower the request rate with \"mclaunch config set ratelimit 5\"",
		}
	}
	return wrapped
}
