package java

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/minepkg/mclaunch/internals/platform"
)

// Java is an installed (or to be installed) runtime component
type Java struct {
	Component string
	// dir is runtime/{component}/{platform}
	dir string
	os  string
}

// Home returns the directory the runtime files are placed in
func (j *Java) Home() string {
	return filepath.Join(j.dir, j.Component)
}

// Bin returns the path of the java executable
func (j *Java) Bin() string {
	var bin string
	switch j.os {
	case platform.Windows:
		bin = "bin/javaw.exe"
	case platform.OSX: // macOS
		bin = "jre.bundle/Contents/Home/bin/java"
	default:
		bin = "bin/java"
	}

	return filepath.Join(j.Home(), filepath.FromSlash(bin))
}

// Installed returns true if the executable exists
func (j *Java) Installed() bool {
	stat, err := os.Stat(j.Bin())
	return err == nil && !stat.IsDir()
}

// Version returns the content of the .version marker or "" if it is not installed
func (j *Java) Version() string {
	raw, err := os.ReadFile(j.versionFile())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func (j *Java) versionFile() string {
	return filepath.Join(j.dir, ".version")
}

func (j *Java) ledgerFile() string {
	return filepath.Join(j.dir, j.Component+".sha1")
}
