package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcvglass/mcv/internals/commands"
	"github.com/mcvglass/mcv/internals/datadir"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(2),
	}, &setRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type setRunner struct{}

func (s *setRunner) RunE(cmd *cobra.Command, args []string) error {
	key, entry, err := findEntry(args[0])
	if err != nil {
		return err
	}

	newValue, err := parseValue(entry, args[1])
	if err != nil {
		return err
	}

	previous := "(unset)"
	if viper.IsSet(key) {
		previous = fmt.Sprintf("%v", viper.Get(key))
	}
	viper.Set(key, newValue)

	layout, err := datadir.Detect()
	if err != nil {
		return err
	}
	if err := layout.MkdirAll(); err != nil {
		return err
	}
	if err := viper.WriteConfigAs(layout.ConfigFile()); err != nil {
		return err
	}

	fmt.Printf(
		"Changed config entry:\n  %s: %s → %s\n",
		key,
		gchalk.Strikethrough(previous),
		gchalk.Bold(fmt.Sprintf("%v", newValue)),
	)
	return nil
}

func parseValue(entry configEntry, value string) (interface{}, error) {
	switch entry.kind {
	case kindInt:
		num, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", value)
		}
		return num, nil
	case kindChoice:
		for _, choice := range entry.choices {
			if strings.EqualFold(choice, value) {
				return choice, nil
			}
		}
		return nil, &commands.CliError{
			Text:        fmt.Sprintf("%q is not a valid value", value),
			Suggestions: []string{"Valid values: " + strings.Join(entry.choices, ", ")},
		}
	default:
		return value, nil
	}
}
