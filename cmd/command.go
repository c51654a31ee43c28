package cmd

import (
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/spf13/cobra"
)

func init() {
	runner := &commandRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "command <version>",
		Short: "Prints the command that would launch an installed version",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeVersions,
	}, runner)

	runner.flags = launcher.CmdLaunchFlags(cmd.Command)
	cmd.Flags().BoolVar(&runner.lines, "lines", false, "Print every argument on its own line")

	rootCmd.AddCommand(cmd.Command)
}

type commandRunner struct {
	flags *launcher.LaunchFlags
	lines bool
}

func (c *commandRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	instance := newInstance()

	version, err := resolveVersionArg(ctx, instance, args[0])
	if err != nil {
		return err
	}

	l := launcher.New(instance, version)
	l.LauncherVersion = Version
	l.Apply(c.flags)
	if _, err := l.Java(ctx); err != nil {
		return err
	}

	command, err := l.Command(ctx, withIdentity(c.flags.Options()))
	if err != nil {
		return err
	}

	if c.lines {
		fmt.Println(strings.Join(command, "\n"))
		return nil
	}
	fmt.Println(shellescape.QuoteCommand(command))
	return nil
}
