package dev

import (
	"fmt"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/instances"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "clear-cache",
		Short: "Removes extracted natives and unfinished downloads from the minecraft directory",
		Long:  "Removes extracted natives and unfinished downloads. Saves, screenshots, resource packs and java runtimes are never touched",
	}, &clearCacheRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type clearCacheRunner struct{}

func (i *clearCacheRunner) RunE(cmd *cobra.Command, args []string) error {
	root := viper.GetString("directory")
	if root == "" {
		root = instances.DefaultMinecraftDirectory()
	}
	instance := instances.New(root, nil)

	if err := instance.Clean(); err != nil {
		return err
	}

	fmt.Println("Cleaned " + root)
	return nil
}
