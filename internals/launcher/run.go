package launcher

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/mcvglass/mcv/internals/datadir"
	"github.com/mcvglass/mcv/internals/engine"
	"github.com/mcvglass/mcv/internals/skinpack"
)

var (
	// ErrBootstrap wraps failures while getting a java runtime
	ErrBootstrap = errors.New("java runtime could not be prepared")
	// ErrLaunch wraps failures while spawning the game process
	ErrLaunch = errors.New("game could not be started")
)

// PackID is how the generated skin pack is referenced in options.txt
const PackID = "file/" + datadir.SkinPackName

// Run executes the launch sequence for the given configuration. It
// blocks until the game process was spawned (or a step failed) and
// closes the event stream before returning. The game itself is
// detached; its lifetime is not tied to ctx.
//
// Every step is fatal except the skin pack ones, which degrade to a
// warning event.
func (l *Launcher) Run(ctx context.Context, cfg Config) error {
	defer close(l.events)

	l.emit(StageIdle, -1, "starting launch sequence")

	err := l.run(ctx, cfg)
	if err != nil {
		l.emit(StageFailed, -1, err.Error())
		return err
	}

	l.emit(StageSucceeded, 100, "game started")
	return nil
}

func (l *Launcher) run(ctx context.Context, cfg Config) error {
	l.emit(StageResolvingJava, -1, "preparing java runtime")
	javaBin, err := l.Java.Ensure(ctx, func(p int) {
		l.emit(StageResolvingJava, p, "downloading java runtime")
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}

	l.emit(StageResolvingVersion, -1, "resolving minecraft "+cfg.Version)
	onProgress := func(p int) {
		l.emit(StageResolvingVersion, p, "downloading game files")
	}
	res, err := l.Engine.Resolve(ctx, cfg.Version, cfg.Loader, javaBin, onProgress)
	if err != nil {
		return err
	}

	if res.LaunchID != res.BaseID {
		l.emit(StageResolvingLoader, -1, "using "+res.LaunchID)
	} else {
		l.emit(StageResolvingLoader, -1, "no mod loader")
	}

	l.buildSkinPack(ctx, cfg)

	l.emit(StageLaunching, -1, "starting minecraft "+res.LaunchID)
	cmd, err := l.Engine.BuildLaunchCmd(ctx, res.LaunchID, &engine.LaunchOptions{
		Username: cfg.Username,
		RamGB:    cfg.RamGB,
		JavaBin:  javaBin,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLaunch, err)
	}

	// free what we can before handing memory to the game
	runtime.GC()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrLaunch, err)
	}
	// detach: the game outlives us, we never collect its exit code
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("%w: %w", ErrLaunch, err)
	}

	return nil
}

// buildSkinPack rebuilds and registers the skin resource pack. Skin
// problems must never stop a launch, so everything here degrades to a
// warning event.
func (l *Launcher) buildSkinPack(ctx context.Context, cfg Config) {
	l.emit(StageBuildingSkinPack, -1, "building skin pack")

	source := skinpack.Source{Type: strings.ToLower(cfg.SkinType), Path: cfg.SkinPath}
	if err := skinpack.Build(ctx, l.Layout.SkinPackDir(), source); err != nil {
		var warn *skinpack.Warning
		if !errors.As(err, &warn) {
			l.emit(StageBuildingSkinPack, -1, "skin pack skipped: "+err.Error())
			return
		}
		l.emit(StageBuildingSkinPack, -1, warn.Error())
	}

	l.emit(StageRegisteringPack, -1, "registering skin pack")
	if err := skinpack.Register(l.Layout.OptionsFile(), PackID); err != nil {
		l.emit(StageRegisteringPack, -1, "skin pack not registered: "+err.Error())
	}
}
