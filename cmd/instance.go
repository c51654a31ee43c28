package cmd

import (
	"github.com/minepkg/mclaunch/internals/globals"
	"github.com/minepkg/mclaunch/internals/instances"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/ownhttp"
	"github.com/spf13/viper"
)

// newInstance returns the instance for the configured minecraft directory
func newInstance() *instances.Instance {
	root := viper.GetString("directory")
	if root == "" {
		root = instances.DefaultMinecraftDirectory()
	}

	client := globals.HTTPClient
	if rps := viper.GetFloat64("ratelimit"); rps > 0 {
		client = ownhttp.NewThrottled(rps)
	}

	instance := instances.New(root, client)
	if url := viper.GetString("versionmanifesturl"); url != "" {
		instance.VersionIndexURL = url
	}
	if url := viper.GetString("runtimemanifesturl"); url != "" {
		instance.Java.IndexURL = url
	}
	return instance
}

// withIdentity sets the stored player and launcher name on opts
func withIdentity(opts *minecraft.LaunchOptions) *minecraft.LaunchOptions {
	opts.LauncherName = viper.GetString("launchername")
	if store := globals.Credentials; store != nil && store.Auth != nil {
		opts.Username = store.Auth.GetPlayerName()
		opts.UUID = store.Auth.GetUUID()
		opts.Token = store.Auth.GetAccessToken()
	}
	return opts
}
