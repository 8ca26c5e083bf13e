// Package config implements the config get/set subcommands.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	kindString = iota
	kindInt
	kindChoice
)

type configEntry struct {
	kind    int
	choices []string
	help    string
}

var entries = map[string]configEntry{
	"username":  {kind: kindString, help: "player name used in game"},
	"ram_gb":    {kind: kindInt, help: "max heap in GiB (0 = derive from system memory)"},
	"version":   {kind: kindString, help: `minecraft version id or "latest"`},
	"loader":    {kind: kindChoice, choices: []string{"Vanilla", "Fabric", "Forge"}, help: "mod loader"},
	"skin_type": {kind: kindChoice, choices: []string{"url", "file"}, help: "skin source kind"},
	"skin_path": {kind: kindString, help: "skin file path or url"},
}

// SubCmd is the "config" command group, added to the root command
var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage launcher configuration",
}

func findEntry(key string) (string, configEntry, error) {
	key = strings.ToLower(key)
	entry, ok := entries[key]
	if !ok {
		return "", configEntry{}, fmt.Errorf("config key %q does not exist", key)
	}
	return key, entry, nil
}
