package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// maybeSpinner animates when stdout is a terminal and falls back to
// plain log lines otherwise (pipes, CI)
type maybeSpinner struct {
	spin    bool
	spinner *spinner.Spinner
	last    string
}

func newMaybeSpinner(spin bool) *maybeSpinner {
	s := &maybeSpinner{
		spin:    spin,
		spinner: spinner.New(spinner.CharSets[9], 300*time.Millisecond),
	}
	s.spinner.Prefix = " "
	return s
}

func (m *maybeSpinner) Start() {
	if m.spin {
		m.spinner.Start()
	}
}

func (m *maybeSpinner) Stop() {
	if m.spin {
		m.spinner.Stop()
	}
}

// Update changes the spinner text, printing each distinct text once in
// plain mode
func (m *maybeSpinner) Update(t string) {
	m.spinner.Suffix = " " + t
	if !m.spin && t != m.last {
		fmt.Println(t)
	}
	m.last = t
}
