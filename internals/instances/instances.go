// Package instances installs minecraft versions into an installation root and
// builds the command to launch them.
package instances

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/minepkg/mclaunch/internals/cache"
	"github.com/minepkg/mclaunch/internals/java"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/platform"
)

// maxInheritanceDepth is the number of inheritsFrom links a manifest may follow
const maxInheritanceDepth = 8

// Instance is an installation root (usually .minecraft) containing
// versions, libraries, assets and java runtimes
type Instance struct {
	// Root is the directory containing everything required to run minecraft.
	Root     string
	HTTP     *http.Client
	Cache    *cache.ResponseCache
	Logger   *log.Logger
	Platform platform.Info
	// VersionIndexURL defaults to minecraft.DefaultVersionIndexURL
	VersionIndexURL string
	// ResourcesURL is where asset objects are downloaded from. Defaults to minecraft.AssetBaseURL
	ResourcesURL string
	// Java installs runtime components
	Java *java.Installer
	// Locator finds the java executable for a runtime component. Defaults to Java
	Locator java.Locator
}

// New returns an instance for the given root directory. client may be nil
func New(root string, client *http.Client) *Instance {
	if client == nil {
		client = http.DefaultClient
	}
	responses := cache.New(client)
	javaInstaller := java.NewInstaller(root, client, responses)

	return &Instance{
		Root:            root,
		HTTP:            client,
		Cache:           responses,
		Logger:          log.Default().WithPrefix("instances"),
		Platform:        platform.Current(),
		VersionIndexURL: minecraft.DefaultVersionIndexURL,
		ResourcesURL:    minecraft.AssetBaseURL,
		Java:            javaInstaller,
		Locator:         javaInstaller,
	}
}

// VersionsDir returns the path to the versions directory
func (i *Instance) VersionsDir() string {
	return filepath.Join(i.Root, "versions")
}

// VersionDir returns the directory of a single version
func (i *Instance) VersionDir(id string) string {
	return filepath.Join(i.VersionsDir(), id)
}

// AssetsDir returns the path to the assets directory
func (i *Instance) AssetsDir() string {
	return filepath.Join(i.Root, "assets")
}

// LibrariesDir returns the path to the libraries directory
func (i *Instance) LibrariesDir() string {
	return filepath.Join(i.Root, "libraries")
}

// NativesDir returns the directory natives of a version are extracted to
func (i *Instance) NativesDir(id string) string {
	return filepath.Join(i.VersionDir(id), "natives")
}

// manifestPath returns versions/{id}/{id}.json
func (i *Instance) manifestPath(id string) string {
	return filepath.Join(i.VersionDir(id), id+".json")
}

// IsInstalled returns true if the version directory exists
func (i *Instance) IsInstalled(id string) bool {
	stat, err := os.Stat(i.VersionDir(id))
	return err == nil && stat.IsDir()
}

// environment is used to evaluate library rules
func (i *Instance) environment(opts *minecraft.LaunchOptions) minecraft.Environment {
	return minecraft.Environment{Platform: i.Platform, Options: opts}
}
