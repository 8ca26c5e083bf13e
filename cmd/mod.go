package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcvglass/mcv/internals/commands"
	"github.com/mcvglass/mcv/internals/launcher"
)

func init() {
	modCmd := &cobra.Command{
		Use:   "mod",
		Short: "Manage installed mods",
	}

	addCmd := commands.New(&cobra.Command{
		Use:   "add <jar>",
		Short: "Copy a mod jar into the mods folder",
		Args:  cobra.ExactArgs(1),
	}, &modAddRunner{})

	modCmd.AddCommand(addCmd.Command)
	rootCmd.AddCommand(modCmd)
}

type modAddRunner struct{}

func (r *modAddRunner) RunE(cmd *cobra.Command, args []string) error {
	cfg := launchConfig()
	if cfg.Loader == launcher.LoaderVanilla {
		return &commands.CliError{
			Text: "mods need a mod loader, but the configured loader is Vanilla",
			Suggestions: []string{
				"mcv config set loader Fabric",
				"mcv config set loader Forge",
			},
		}
	}

	source := args[0]
	if !strings.HasSuffix(source, ".jar") {
		return fmt.Errorf("%s is not a jar file", source)
	}

	target := filepath.Join(layout.ModsDir(), filepath.Base(source))
	if err := copyFile(source, target); err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Added %s", filepath.Base(source)))
	return nil
}

func copyFile(source string, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
