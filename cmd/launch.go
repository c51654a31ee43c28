package cmd

import (
	"os"
	"os/signal"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &launchRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "launch [version]",
		Short:   "Installs (if needed) and launches a Minecraft version",
		Long:    "Launches a Minecraft version. The version can be an id, \"latest\", \"snapshot\" or a constraint like \"~1.20\"",
		Aliases: []string{"run", "start", "play"},
		Args:    cobra.MaximumNArgs(1),

		ValidArgsFunction: completeVersions,
	}, runner)

	runner.flags = launcher.CmdLaunchFlags(cmd.Command)
	cmd.Flags().BoolVar(&runner.skipInstall, "skip-install", false, "Launch without checking the installation")

	rootCmd.AddCommand(cmd.Command)
}

type launchRunner struct {
	flags       *launcher.LaunchFlags
	skipInstall bool
}

func (l *launchRunner) RunE(cmd *cobra.Command, args []string) error {
	// ctrl-c cancels the installation
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	instance := newInstance()

	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	version, err := resolveVersionArg(ctx, instance, arg)
	if err != nil {
		return err
	}

	cliLauncher := launcher.New(instance, version)
	cliLauncher.LauncherVersion = Version
	cliLauncher.NonInteractive = viper.GetBool("noninteractive")
	cliLauncher.Apply(l.flags)

	if !l.skipInstall {
		if err := cliLauncher.Prepare(ctx); err != nil {
			return err
		}
	} else if _, err := cliLauncher.Java(ctx); err != nil {
		return err
	}

	stop()

	// minecraft receives the interrupt as well and stops itself, we keep waiting for it
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cliLauncher.Run(cmd.Context(), withIdentity(l.flags.Options())); err != nil {
		return commands.AsCliError(err)
	}
	return nil
}
