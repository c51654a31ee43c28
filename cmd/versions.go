package cmd

import (
	"fmt"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/instances"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	runner := &versionsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "versions",
		Short:   "Lists available and installed Minecraft versions",
		Aliases: []string{"list", "ls"},
		Args:    cobra.NoArgs,
	}, runner)

	cmd.Flags().StringVarP(&runner.constraint, "constraint", "c", "", "Only list versions matching this semver constraint (eg. \"~1.20\")")
	cmd.Flags().BoolVar(&runner.installed, "installed", false, "Only list installed versions")
	cmd.Flags().BoolVar(&runner.outdated, "outdated", false, "Only list installed versions with an outdated manifest")
	cmd.Flags().BoolVar(&runner.snapshots, "snapshots", false, "Include snapshots and old alpha/beta versions")
	cmd.Flags().StringVar(&runner.refresh, "refresh", "", "Remove the manifest of this version, so the next install downloads it again")

	rootCmd.AddCommand(cmd.Command)
}

type versionsRunner struct {
	constraint string
	installed  bool
	outdated   bool
	snapshots  bool
	refresh    string
}

func (v *versionsRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	instance := newInstance()

	if v.refresh != "" {
		if err := instance.Refresh(ctx, v.refresh); err != nil {
			return err
		}
		fmt.Println("Manifest of " + v.refresh + " removed. It is downloaded again on the next install")
		return nil
	}

	if v.outdated {
		outdated, err := instance.OutdatedVersions(ctx)
		if err != nil {
			return err
		}
		if len(outdated) == 0 {
			fmt.Println("All installed versions are up to date")
			return nil
		}
		for _, id := range outdated {
			fmt.Println(id + gchalk.Gray(" (outdated)"))
		}
		fmt.Println("\nRun \"mclaunch install <version> --force\" to update them")
		return nil
	}

	var versions []minecraft.VersionInfo
	var err error
	if v.installed {
		versions, err = instance.GetInstalledVersions()
	} else {
		versions, err = instance.GetAvailableVersions(ctx)
	}
	if err != nil {
		return err
	}

	if v.constraint != "" {
		versions, err = instances.FilterVersions(versions, v.constraint)
		if err != nil {
			return err
		}
	}

	installed, err := instance.GetInstalledVersions()
	if err != nil {
		return err
	}

	for _, version := range versions {
		if !v.snapshots && !v.installed && version.Type != minecraft.VersionTypeRelease && version.Type != "" {
			continue
		}
		line := version.ID
		if version.Type != "" && version.Type != minecraft.VersionTypeRelease {
			line += gchalk.Gray(" (" + version.Type + ")")
		}
		isInstalled := slices.IndexFunc(installed, func(i minecraft.VersionInfo) bool { return i.ID == version.ID }) != -1
		if isInstalled {
			line += gchalk.Green(" installed")
		}
		fmt.Println(line)
	}
	return nil
}
