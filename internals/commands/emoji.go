package commands

import (
	"os"
	"runtime"
)

var emojiSupport = true

// EmojiEnabled can be set to false to never print emojis
var EmojiEnabled = true

func init() {
	if runtime.GOOS != "windows" {
		return
	}

	// cmd and powershell set this, the windows terminal does not
	if os.Getenv("SESSIONNAME") != "" {
		emojiSupport = false
	}
}

// Emoji returns the given string (usually a emoji) if the current terminal
// (probably) supports it
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
