// Package config contains the config get and set commands
package config

import (
	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindBool
	configKindFloat
)

type configEntry struct {
	kind int
	help string
}

var config = map[string]configEntry{
	"directory":          {configKindString, "Minecraft directory (default is the one the official launcher uses)"},
	"versionmanifesturl": {configKindString, "URL of the version index"},
	"runtimemanifesturl": {configKindString, "URL of the java runtime index"},
	"noninteractive":     {configKindBool, "Never show spinners"},
	"verboselogging":     {configKindBool, "Log debug output"},
	"launchername":       {configKindString, "Launcher name passed to the game"},
	"ratelimit":          {configKindFloat, "Maximum requests per second (0 is unlimited)"},
}

// SubCmd is the config command
var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}
