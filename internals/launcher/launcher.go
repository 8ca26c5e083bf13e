// Package launcher runs the whole launch sequence: java runtime,
// version and loader resolution, skin pack, game spawn. It never
// prints; progress goes out as events on a channel.
package launcher

import (
	"context"
	"os/exec"

	"github.com/mcvglass/mcv/internals/datadir"
	"github.com/mcvglass/mcv/internals/engine"
	"github.com/mcvglass/mcv/internals/java"
)

// Engine resolves versions and builds the game command. Implemented by
// *engine.Client, replaced by a fake in tests.
type Engine interface {
	Resolve(ctx context.Context, alias string, loader string, javaBin string, onProgress func(p int)) (*engine.Resolved, error)
	BuildLaunchCmd(ctx context.Context, launchID string, opts *engine.LaunchOptions) (*exec.Cmd, error)
}

// JavaRuntime hands out a working java executable
type JavaRuntime interface {
	Ensure(ctx context.Context, onProgress func(p int)) (string, error)
}

// Launcher orchestrates one launch run
type Launcher struct {
	Layout *datadir.Layout
	Engine Engine
	Java   JavaRuntime

	events chan Event
}

// New wires a Launcher against the real engine and java runtime
func New(layout *datadir.Layout) *Launcher {
	return &Launcher{
		Layout: layout,
		Engine: engine.New(layout),
		Java:   java.New(layout.RuntimeDir()),
		events: make(chan Event, 16),
	}
}

// Events is the stream Run pushes progress on. It is closed when Run
// returns.
func (l *Launcher) Events() <-chan Event {
	return l.events
}

func (l *Launcher) emit(stage Stage, percent int, message string) {
	if l.events == nil {
		return
	}
	l.events <- Event{Stage: stage, Percent: percent, Message: message}
}
