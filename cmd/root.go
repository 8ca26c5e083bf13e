package cmd

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcvglass/mcv/cmd/config"
	"github.com/mcvglass/mcv/internals/cmdlog"
	"github.com/mcvglass/mcv/internals/datadir"
	"github.com/mcvglass/mcv/internals/launcher"
)

// Version is the launcher version reported to the game and in --version
const Version = "4.0.0"

var logger = cmdlog.New()

var (
	layout        *datadir.Layout
	disableColors bool
)

var rootCmd = &cobra.Command{
	Version: Version,
	Use:     "mcv",
	Short:   "MCV at your service.",
	Long:    "Offline Minecraft launcher with mod loader and skin support",

	Example: `
  mcv launch
  mcv config set loader Fabric
  mcv skin`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")

	rootCmd.AddCommand(config.SubCmd)
}

// initConfig locates the data dir and reads config.json from it.
// A missing file just means defaults.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		color.Disable()
	}

	detected, err := datadir.Detect()
	if err != nil {
		logger.Fail("no usable data directory: " + err.Error())
	}
	if err := detected.MkdirAll(); err != nil {
		logger.Fail("could not create data directory: " + err.Error())
	}
	layout = detected

	defaults := launcher.DefaultConfig()
	viper.SetDefault("username", defaults.Username)
	viper.SetDefault("ram_gb", defaults.RamGB)
	viper.SetDefault("version", defaults.Version)
	viper.SetDefault("loader", defaults.Loader)
	viper.SetDefault("skin_type", defaults.SkinType)
	viper.SetDefault("skin_path", defaults.SkinPath)

	viper.SetConfigFile(layout.ConfigFile())
	viper.SetConfigType("json")
	viper.AutomaticEnv()

	// a missing config file is fine, anything else should be visible
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		logger.Warn("config file ignored: " + err.Error())
	}
}

// launchConfig is the persisted config with everything viper knows
// layered on top (file, env, defaults)
func launchConfig() launcher.Config {
	cfg := launcher.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Warn("unreadable config values ignored: " + err.Error())
	}
	return cfg
}
