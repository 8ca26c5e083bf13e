package commands

import (
	"os"
	"runtime"
)

var emojiSupport = true

func init() {
	if runtime.GOOS != "windows" {
		return
	}

	// raw cmd and powershell set SESSIONNAME, windows terminal does not
	if os.Getenv("SESSIONNAME") != "" {
		emojiSupport = false
	}
}

// Emoji returns e when the terminal (probably) renders it, otherwise
// an empty string
func Emoji(e string) string {
	if emojiSupport {
		return e
	}
	return ""
}
