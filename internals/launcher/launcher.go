// Package launcher installs and starts a version with CLI output
package launcher

import (
	"io"
	"os"
	"os/exec"

	"github.com/minepkg/mclaunch/internals/instances"
	"github.com/minepkg/mclaunch/internals/minecraft"
)

// Launcher can launch minecraft versions with CLI output
type Launcher struct {
	// Instance is the installation root to launch from
	Instance *instances.Instance
	// Version is the version id to launch
	Version string

	// LauncherVersion is the version number of mclaunch
	LauncherVersion string

	Cmd    *exec.Cmd
	Stdout io.Writer
	Stderr io.Writer

	// ForceInstall runs the install even if nothing seems to be missing
	ForceInstall bool

	// NonInteractive determines if fancy spinners should be displayed
	NonInteractive bool

	// UseSystemJava skips runtime installation and launches with "java" from the PATH
	UseSystemJava bool

	// JavaComponent overwrites the runtime component of the manifest (eg. "java-runtime-gamma")
	JavaComponent string

	// LaunchManifest is the resolved manifest. it is set after calling `Prepare`
	LaunchManifest *minecraft.LaunchManifest

	java string
}

// New returns a launcher for the version
func New(instance *instances.Instance, version string) *Launcher {
	return &Launcher{
		Instance: instance,
		Version:  version,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}
