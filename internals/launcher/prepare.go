package launcher

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/instances"
)

// Prepare ensures all requirements are met to launch the version
func (l *Launcher) Prepare(ctx context.Context) error {
	instance := l.Instance

	l.printIntro()

	needsInstall := l.ForceInstall || !instance.IsInstalled(l.Version)
	if !needsInstall {
		man, err := instance.ResolveManifest(ctx, l.Version)
		if err != nil {
			return err
		}
		missing, err := instance.FindMissingLibraries(man)
		if err != nil {
			return err
		}
		needsInstall = len(missing) != 0
	}

	fmt.Print(pipeText.Render(gchalk.BgGray("Installation")))
	if needsInstall {
		fmt.Println(gchalk.Gray("(installing)"))
		report, err := l.Install(ctx)
		if err != nil {
			return err
		}
		printReport(report)
	} else {
		fmt.Println(gchalk.Gray("(up to date)"))
	}
	fmt.Println("│")

	man, err := instance.ResolveManifest(ctx, l.Version)
	if err != nil {
		return err
	}
	l.LaunchManifest = man

	if _, err := l.Java(ctx); err != nil {
		return err
	}

	l.printOutro()
	return nil
}

// Install installs the version with a spinner showing the progress
func (l *Launcher) Install(ctx context.Context) (*instances.InstallReport, error) {
	s := NewMaybeSpinner(!l.NonInteractive)
	s.Start()
	defer s.Stop()

	return l.Instance.Install(ctx, l.Version, s)
}

func printReport(report *instances.InstallReport) {
	for _, id := range report.Installed {
		fmt.Println("│ installed " + id)
	}
	if len(report.SoftFailures) == 0 {
		return
	}
	fmt.Println(pipeText.Render(gchalk.Yellow(fmt.Sprintf("%d files could not be installed:", len(report.SoftFailures)))))
	for _, f := range report.SoftFailures {
		fmt.Printf("│   [%s] %s\n", f.Stage, gchalk.Gray(f.Err.Error()))
	}
}

var pipeText = lipgloss.NewStyle().
	Border(lipgloss.Border{Left: "│"}, false).
	BorderLeft(true).
	Padding(0, 1)

func (l *Launcher) printIntro() {
	title := lipgloss.NewStyle().
		Border(lipgloss.Border{Left: "┃"}, false).
		BorderLeft(true).
		Background(lipgloss.Color("#FFF")).
		Foreground(lipgloss.Color("#000")).
		Padding(0, 1).
		Render("Minecraft " + l.Version)

	fmt.Println(title)
	fmt.Println("│")
	fmt.Println("│ Directory: " + l.Instance.Root)
}

func (l *Launcher) printOutro() {
	javaDir := "(from manifest)"
	if l.java != "" {
		javaDir = l.java
	}
	if man := l.LaunchManifest; man != nil {
		fmt.Printf("│ %d libraries, released %s\n", len(man.Libraries), releaseAge(man.ReleaseTime))
	}
	fmt.Println("│ mclaunch " + l.LauncherVersion)
	fmt.Println("│ Java " + javaDir)
}

func releaseAge(releaseTime string) string {
	t, err := time.Parse(time.RFC3339, releaseTime)
	if err != nil {
		return "(unknown)"
	}
	return humanize.Time(t)
}
