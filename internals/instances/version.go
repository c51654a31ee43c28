package instances

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/minepkg/mclaunch/internals/minecraft"
	"golang.org/x/exp/slices"
)

// DefaultMinecraftDirectory returns the directory the official launcher uses
func DefaultMinecraftDirectory() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, ".minecraft")
		}
		return filepath.Join(home, "AppData", "Roaming", ".minecraft")
	case "darwin": // macOS
		return filepath.Join(home, "Library", "Application Support", "minecraft")
	default:
		return filepath.Join(home, ".minecraft")
	}
}

// GetInstalledVersions returns all versions that have a readable manifest in the versions directory
func (i *Instance) GetInstalledVersions() ([]minecraft.VersionInfo, error) {
	entries, err := os.ReadDir(i.VersionsDir())
	if os.IsNotExist(err) {
		return []minecraft.VersionInfo{}, nil
	}
	if err != nil {
		return nil, err
	}

	versions := make([]minecraft.VersionInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		buf, err := os.ReadFile(i.manifestPath(entry.Name()))
		if err != nil {
			// folders without manifest are leftovers
			continue
		}
		man := minecraft.LaunchManifest{}
		if err := json.Unmarshal(buf, &man); err != nil {
			i.Logger.Warn("skipping invalid manifest", "version", entry.Name(), "err", err)
			continue
		}
		versions = append(versions, minecraft.VersionInfo{
			ID:              entry.Name(),
			Type:            man.Type,
			ReleaseTime:     man.ReleaseTime,
			ComplianceLevel: man.ComplianceLevel,
		})
	}
	return versions, nil
}

// GetAvailableVersions returns the remote versions followed by the installed
// versions the remote index does not know about (modded versions for example)
func (i *Instance) GetAvailableVersions(ctx context.Context) ([]minecraft.VersionInfo, error) {
	versions, err := i.GetVersionList(ctx)
	if err != nil {
		return nil, err
	}
	installed, err := i.GetInstalledVersions()
	if err != nil {
		return nil, err
	}

	for _, local := range installed {
		known := slices.IndexFunc(versions, func(v minecraft.VersionInfo) bool {
			return v.ID == local.ID
		})
		if known == -1 {
			versions = append(versions, local)
		}
	}
	return versions, nil
}
