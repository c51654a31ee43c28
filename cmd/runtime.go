package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runtimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "Manage the java runtimes provided by mojang",
}

func init() {
	list := commands.New(&cobra.Command{
		Use:   "list",
		Short: "Lists the runtime components available for this system",
		Args:  cobra.NoArgs,
	}, &runtimeListRunner{})

	info := commands.New(&cobra.Command{
		Use:   "info <component>",
		Short: "Shows which runtime version would be installed",
		Args:  cobra.ExactArgs(1),
	}, &runtimeInfoRunner{})

	install := commands.New(&cobra.Command{
		Use:   "install <component>",
		Short: "Installs a runtime component (eg. java-runtime-gamma)",
		Args:  cobra.ExactArgs(1),
	}, &runtimeInstallRunner{})

	runtimeCmd.AddCommand(list.Command, info.Command, install.Command)
	rootCmd.AddCommand(runtimeCmd)
}

type runtimeListRunner struct{}

func (r *runtimeListRunner) RunE(cmd *cobra.Command, args []string) error {
	installer := newInstance().Java

	components, err := installer.ListComponents(cmd.Context())
	if err != nil {
		return err
	}
	for _, component := range components {
		line := component
		if version := installer.Runtime(component).Version(); version != "" {
			line += gchalk.Green(" installed " + version)
		}
		fmt.Println(line)
	}
	return nil
}

type runtimeInfoRunner struct{}

func (r *runtimeInfoRunner) RunE(cmd *cobra.Command, args []string) error {
	installer := newInstance().Java

	info, err := installer.Information(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	runtime := installer.Runtime(args[0])

	fmt.Printf("Component: %s\n", args[0])
	fmt.Printf("Version:   %s\n", info.Name)
	fmt.Printf("Released:  %s\n", releasedText(info.Released))
	if installed := runtime.Version(); installed != "" {
		fmt.Printf("Installed: %s in %s\n", installed, runtime.Home())
		if size, err := dirSize(runtime.Home()); err == nil {
			fmt.Printf("Size:      %s\n", humanize.Bytes(size))
		}
	} else {
		fmt.Println("Installed: no")
	}
	return nil
}

type runtimeInstallRunner struct{}

func (r *runtimeInstallRunner) RunE(cmd *cobra.Command, args []string) error {
	instance := newInstance()
	installer := instance.Java

	s := launcher.NewMaybeSpinner(!viper.GetBool("noninteractive"))
	installer.Observer = s
	s.Start()
	err := installer.Install(cmd.Context(), args[0])
	s.Stop()
	if err != nil {
		return err
	}

	bin, err := installer.Executable(args[0])
	if err != nil {
		return err
	}
	fmt.Println(commands.Emoji("☕ ") + "Installed " + args[0] + " " + gchalk.Gray(bin))
	return nil
}
