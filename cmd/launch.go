package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mcvglass/mcv/internals/commands"
	"github.com/mcvglass/mcv/internals/engine"
	"github.com/mcvglass/mcv/internals/forge"
	"github.com/mcvglass/mcv/internals/launcher"
)

// overwriteFlags overwrite single config values for one run
type overwriteFlags struct {
	username string
	ram      int
	version  string
	loader   string
}

func init() {
	runner := &launchRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "launch",
		Short:   "Launch minecraft",
		Aliases: []string{"run", "start", "play"},
		Args:    cobra.NoArgs,
	}, runner)

	cmd.Flags().StringVarP(&runner.overwrites.username, "username", "u", "", "Overwrite the configured player name")
	cmd.Flags().IntVarP(&runner.overwrites.ram, "ram", "r", 0, "Overwrite the configured max heap (GiB)")
	cmd.Flags().StringVarP(&runner.overwrites.version, "minecraft", "m", "", "Overwrite the configured minecraft version")
	cmd.Flags().StringVarP(&runner.overwrites.loader, "loader", "l", "", "Overwrite the configured mod loader")

	rootCmd.AddCommand(cmd.Command)
}

type launchRunner struct {
	overwrites overwriteFlags
}

func (r *launchRunner) RunE(cmd *cobra.Command, args []string) error {
	cfg := launchConfig()
	if r.overwrites.username != "" {
		cfg.Username = r.overwrites.username
	}
	if r.overwrites.ram != 0 {
		cfg.RamGB = r.overwrites.ram
	}
	if r.overwrites.version != "" {
		cfg.Version = r.overwrites.version
	}
	if r.overwrites.loader != "" {
		cfg.Loader = r.overwrites.loader
	}

	fmt.Println(
		lipgloss.JoinHorizontal(
			0.5,
			gchalk.Hex("#7a563b")("│"+"\n"+"┕"),
			commands.StyleGrass.Render(commands.Emoji("⛏  ")+"Launching Minecraft "+cfg.Version),
		),
	)

	l := launcher.New(layout)
	done := make(chan error, 1)
	go func() {
		done <- l.Run(cmd.Context(), cfg)
	}()

	renderEvents(l)

	if err := <-done; err != nil {
		return richLaunchError(err)
	}

	logger.Info("Minecraft is running. You can close this terminal.")
	return nil
}

// stageSteps maps each working stage to its step headline
var stageSteps = map[launcher.Stage]struct {
	emoji string
	text  string
}{
	launcher.StageResolvingJava:    {"☕", "Java runtime"},
	launcher.StageResolvingVersion: {"🧭", "Game files"},
	launcher.StageResolvingLoader:  {"🧰", "Mod loader"},
	launcher.StageBuildingSkinPack: {"🎨", "Skin pack"},
	launcher.StageRegisteringPack:  {"📦", "Resource pack list"},
	launcher.StageLaunching:        {"🚀", "Launch"},
}

// renderEvents consumes the launcher's event stream until it closes
func renderEvents(l *launcher.Launcher) {
	task := logger.NewTask(len(stageSteps))
	spin := newMaybeSpinner(isatty.IsTerminal(os.Stdout.Fd()))
	spin.Start()
	defer spin.Stop()

	var lastStage launcher.Stage
	for ev := range l.Events() {
		if step, ok := stageSteps[ev.Stage]; ok && ev.Stage != lastStage {
			spin.Stop()
			task.Step(step.emoji, step.text)
			spin.Start()
		}
		lastStage = ev.Stage

		switch {
		case ev.Stage == launcher.StageFailed:
			// the error itself is rendered by the command wrapper
		case ev.Percent >= 0:
			spin.Update(fmt.Sprintf("%s (%d%%)", ev.Message, ev.Percent))
		default:
			spin.Update(ev.Message)
		}
	}
}

// richLaunchError attaches suggestions to the errors a user can
// actually act on
func richLaunchError(err error) error {
	switch {
	case errors.Is(err, engine.ErrUnknownVersion):
		return &commands.CliError{
			Text: err.Error(),
			Suggestions: []string{
				"Check the version id for typos (eg. 1.20.1)",
				`Use "latest" to launch the newest release`,
			},
		}
	case errors.Is(err, forge.ErrUnsupportedVersion):
		return &commands.CliError{
			Text: err.Error(),
			Suggestions: []string{
				"Forge does not build for every minecraft version",
				`Try Fabric instead: mcv config set loader Fabric`,
			},
		}
	case errors.Is(err, launcher.ErrBootstrap):
		return &commands.CliError{
			Text:        err.Error(),
			Suggestions: []string{"Check your internet connection and retry"},
		}
	default:
		return err
	}
}
