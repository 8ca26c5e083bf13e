// Package cmdlog prints human friendly progress to the terminal.
// Only the CLI layer uses it; worker packages report through events.
package cmdlog

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/gookit/color"
)

// Logger prints pretty lines to stdout
type Logger struct {
	emojis    bool
	indention int
}

// New returns a Logger with emoji and color support detected from the
// environment
func New() *Logger {
	emojis := runtime.GOOS != "windows"

	if os.Getenv("CI") != "" {
		emojis = false
		color.Disable()
	}
	return &Logger{emojis: emojis}
}

func (l *Logger) println(a string) {
	fmt.Println(strings.Repeat(" ", l.indention) + a)
}

func (l *Logger) emoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// Info prints a plain line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Warn prints a yellow warning line
func (l *Logger) Warn(s string) {
	fmt.Print(l.emoji("⚠️"))
	color.Style{color.FgYellow, color.OpBold}.Println(s)
}

// Fail prints the message as error and exits 1
func (l *Logger) Fail(s string) {
	fmt.Print(l.emoji("💣"))
	color.Style{color.FgRed, color.OpBold}.Print("Error: ")
	color.Style{color.FgWhite, color.OpBold}.Println(s)
	os.Exit(1)
}

// NewTask returns a Task counting toward the given number of steps
func (l *Logger) NewTask(end int) *Task {
	clone := *l
	return &Task{&clone, 0, end}
}

// Task is a Logger with step progress
type Task struct {
	*Logger
	current int
	end     int
}

// Step prints a "[n / total]" headline for the next step
func (t *Task) Step(emoji string, s string) {
	t.current++
	fmt.Println(color.Cyan.Sprintf(
		"[%d / %d] %s%s",
		t.current,
		t.end,
		t.emoji(emoji),
		s,
	))
}
