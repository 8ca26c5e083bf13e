package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcvglass/mcv/internals/commands"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a config value",
		Args:  cobra.ExactArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (g *getRunner) RunE(cmd *cobra.Command, args []string) error {
	key, entry, err := findEntry(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %v\n", key, viper.Get(key))
	if entry.help != "" {
		fmt.Printf("  (%s)\n", entry.help)
	}
	return nil
}
