package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/minecraft"
)

// Command returns the launch command for the prepared version
func (l *Launcher) Command(ctx context.Context, opts *minecraft.LaunchOptions) ([]string, error) {
	opts = opts.Clone()
	if opts.ExecutablePath == "" && l.java != "" {
		opts.ExecutablePath = l.java
	}
	if opts.LauncherVersion == "" {
		opts.LauncherVersion = l.LauncherVersion
	}
	return l.Instance.BuildLaunchCommand(ctx, l.Version, opts)
}

// Run will launch the version with the provided launch options.
// It will block until minecraft is stopped.
func (l *Launcher) Run(ctx context.Context, opts *minecraft.LaunchOptions) error {
	fmt.Println("│")
	fmt.Println(
		lipgloss.JoinHorizontal(
			0.5,
			gchalk.Hex("#7a563b")("│"+"\n"+"┕"),
			commands.StyleGrass.Render(commands.Emoji("⛏  ")+"Launching Minecraft"),
		),
	)

	command, err := l.Command(ctx, opts)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	// Set the process directory to the game directory
	cmd.Dir = l.Instance.Root
	if opts != nil && opts.GameDirectory != "" {
		cmd.Dir = opts.GameDirectory
	}
	// Pass input to minecraft.
	cmd.Stdin = os.Stdin
	// the tail is used to show errors after a crash
	tail := newOutputTail(500)
	cmd.Stdout = io.MultiWriter(l.Stdout, tail)
	cmd.Stderr = io.MultiWriter(l.Stderr, tail)
	l.Cmd = cmd

	runtime.GC()
	if err := cmd.Start(); err != nil {
		return err
	}
	err = cmd.Wait()

	// minecraft will return code 130 when it was stopped with ctrl-c
	if code := cmd.ProcessState.ExitCode(); code == 130 || code == 0 {
		fmt.Printf("\nMinecraft was stopped normally (exit code %d).\n", code)
		return nil
	}
	if err != nil {
		return l.crashError(cmd.ProcessState.ExitCode(), err, tail)
	}
	return nil
}
