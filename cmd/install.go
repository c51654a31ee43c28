package cmd

import (
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/globals"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &installRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "install [version]",
		Short:   "Installs a Minecraft version with its libraries, assets and java runtime",
		Long:    "Installs a Minecraft version. The version can be an id, \"latest\", \"snapshot\" or a constraint like \"~1.20\"",
		Aliases: []string{"isntall", "i"},
		Args:    cobra.MaximumNArgs(1),

		ValidArgsFunction: completeVersions,
	}, runner)

	cmd.Flags().BoolVarP(&runner.force, "force", "f", false, "Download the manifest again and check every file")

	rootCmd.AddCommand(cmd.Command)
}

type installRunner struct {
	force bool
}

func (i *installRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	instance := newInstance()

	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	version, err := resolveVersionArg(ctx, instance, arg)
	if err != nil {
		return err
	}

	if i.force {
		err := instance.Refresh(ctx, version)
		switch {
		case errors.Is(err, merrors.ErrNotFound):
			globals.Logger.Warn("version is not in the version index, keeping its local manifest", "version", version)
		case err != nil:
			return err
		}
	}

	l := launcher.New(instance, version)
	l.LauncherVersion = Version
	l.ForceInstall = true
	l.NonInteractive = viper.GetBool("noninteractive")

	return l.Prepare(ctx)
}
