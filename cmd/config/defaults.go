package config

import (
	"github.com/minepkg/mclaunch/internals/java"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/spf13/viper"
)

// SetDefaults registers the default value of every config key
func SetDefaults() {
	viper.SetDefault("versionmanifesturl", minecraft.DefaultVersionIndexURL)
	viper.SetDefault("runtimemanifesturl", java.DefaultIndexURL)
	viper.SetDefault("noninteractive", false)
	viper.SetDefault("verboselogging", false)
	viper.SetDefault("launchername", "mclaunch")
	viper.SetDefault("ratelimit", 0)
}
