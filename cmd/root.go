package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/cmd/config"
	"github.com/minepkg/mclaunch/cmd/dev"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/credentials"
	"github.com/minepkg/mclaunch/internals/globals"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the version of mclaunch. set by main
var Version = "dev"

var (
	cfgFile       string
	disableColors bool
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mclaunch",
	Short: "Installs and launches Minecraft versions",
	Long:  "Installs vanilla and modded Minecraft versions from their manifests and launches them",

	Example: `
  mclaunch install 1.20.4
  mclaunch launch latest --server example.com
  mclaunch command 1.20.4 --ram 4096`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $CONFIG_DIR/mclaunch/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&disableColors, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().BoolVar(&commands.EmojiEnabled, "emoji", true, "use emojis in the output")
	rootCmd.PersistentFlags().String("directory", "", "minecraft directory (default is the one the official launcher uses)")
	viper.BindPFlag("directory", rootCmd.PersistentFlags().Lookup("directory"))

	rootCmd.AddCommand(config.SubCmd)
	rootCmd.AddCommand(dev.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		gchalk.SetLevel(gchalk.LevelNone)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	globals.GlobalDir = filepath.Join(configDir, "mclaunch")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigFile(filepath.Join(globals.GlobalDir, "config.toml"))
	}

	viper.SetEnvPrefix("MCLAUNCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match
	config.SetDefaults()

	// a missing config file is fine
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	if verbose || viper.GetBool("verboselogging") {
		log.SetLevel(log.DebugLevel)
		globals.Logger.SetLevel(log.DebugLevel)
	}

	globals.Credentials, err = credentials.New(globals.GlobalDir)
	if err != nil {
		globals.Logger.Warn("could not read stored credentials", "err", err)
	}
}
