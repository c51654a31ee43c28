// Package platform describes the host system the way launch manifests name it.
package platform

import (
	"runtime"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v3/host"
)

// Launch manifests only know these three operating systems
const (
	Windows = "windows"
	OSX     = "osx"
	Linux   = "linux"
)

// Info contains the facts rules and runtime lookups are evaluated against
type Info struct {
	// OS is "windows", "osx" or "linux". Other systems keep their GOOS name
	OS string
	// Arch is the GOARCH of the host
	Arch string
	// Version is the version string of the operating system (eg. "10.0.19045")
	Version string
}

var (
	currentOnce sync.Once
	current     Info
)

// Current returns the facts for the running system.
// The OS version is looked up once and then reused.
func Current() Info {
	currentOnce.Do(func() {
		current = Info{
			OS:      OSName(runtime.GOOS),
			Arch:    runtime.GOARCH,
			Version: osVersion(),
		}
	})
	return current
}

// OSName maps a GOOS to the name used in manifests
func OSName(goos string) string {
	switch goos {
	case "darwin":
		return OSX
	default:
		return goos
	}
}

func osVersion() string {
	_, _, version, err := host.PlatformInformation()
	if err != nil || version == "" {
		// kernel version is better than nothing
		kernel, err := host.KernelVersion()
		if err != nil {
			return ""
		}
		return kernel
	}
	return version
}

// Is32Bit reports if the host cpu is a 32 bit one
func (i Info) Is32Bit() bool {
	switch i.Arch {
	case "386", "arm", "mips", "mipsle", "ppc":
		return true
	}
	return false
}

// ArchBits returns "32" or "64". Used to fill in the ${arch} placeholder of natives
func (i Info) ArchBits() string {
	if i.Is32Bit() {
		return "32"
	}
	return "64"
}

// ClasspathSeparator returns the separator java expects between classpath entries
func (i Info) ClasspathSeparator() string {
	if i.OS == Windows {
		return ";"
	}
	return ":"
}

// RuntimeKey returns the key used by the java runtime index for this platform.
// Unknown systems get "gamecore", which has no runtimes.
func (i Info) RuntimeKey() string {
	switch i.OS {
	case Windows:
		switch {
		case i.Arch == "arm64":
			return "windows-arm64"
		case i.Is32Bit():
			return "windows-x86"
		default:
			return "windows-x64"
		}
	case Linux:
		if i.Is32Bit() {
			return "linux-i386"
		}
		return "linux"
	case OSX:
		if i.Arch == "arm64" {
			return "mac-os-arm64"
		}
		return "mac-os"
	default:
		return "gamecore"
	}
}

// String returns something like "linux/amd64 (6.1.0)"
func (i Info) String() string {
	b := strings.Builder{}
	b.WriteString(i.OS + "/" + i.Arch)
	if i.Version != "" {
		b.WriteString(" (" + i.Version + ")")
	}
	return b.String()
}
