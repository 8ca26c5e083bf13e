package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcvglass/mcv/internals/commands"
	"github.com/mcvglass/mcv/internals/skinpack"
)

func init() {
	runner := &skinRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "skin",
		Short: "Choose the skin used in game",
		Long:  "Pick the embedded default skin, a local png or a download url. The choice is saved to the config.",
		Args:  cobra.NoArgs,
	}, runner)

	cmd.Flags().StringVar(&runner.file, "file", "", "Use a local skin png directly (skips the prompt)")
	cmd.Flags().StringVar(&runner.url, "url", "", "Use a skin download url directly (skips the prompt)")

	rootCmd.AddCommand(cmd.Command)
}

type skinRunner struct {
	file string
	url  string
}

func (r *skinRunner) RunE(cmd *cobra.Command, args []string) error {
	switch {
	case r.file != "" && r.url != "":
		return &commands.CliError{
			Text:        "both --file and --url given",
			Suggestions: []string{"Pass only one of the two"},
		}
	case r.file != "":
		if _, err := os.Stat(r.file); err != nil {
			return fmt.Errorf("skin file not readable: %w", err)
		}
		return saveSkin("file", r.file)
	case r.url != "":
		return saveSkin("url", r.url)
	}

	return r.prompt()
}

func (r *skinRunner) prompt() error {
	selectPrompt := promptui.Select{
		Label: "Skin source",
		Items: []string{"Embedded default", "Local file", "Download url"},
	}
	choice, _, err := selectPrompt.Run()
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		return saveSkin("url", skinpack.DefaultMarker)
	case 1:
		pathPrompt := promptui.Prompt{
			Label: "Path to skin png",
			Validate: func(s string) error {
				_, err := os.Stat(s)
				return err
			},
		}
		path, err := pathPrompt.Run()
		if err != nil {
			return err
		}
		return saveSkin("file", path)
	default:
		urlPrompt := promptui.Prompt{Label: "Skin url"}
		url, err := urlPrompt.Run()
		if err != nil {
			return err
		}
		return saveSkin("url", url)
	}
}

func saveSkin(skinType string, skinPath string) error {
	viper.Set("skin_type", skinType)
	viper.Set("skin_path", skinPath)
	if err := viper.WriteConfigAs(layout.ConfigFile()); err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Skin source saved (%s: %s)", skinType, skinPath))
	logger.Info("The pack is rebuilt on the next launch.")
	return nil
}
