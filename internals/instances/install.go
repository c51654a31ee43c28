package instances

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/pkg/errors"
)

// Observer is notified about the install progress. All methods are best effort
type Observer interface {
	SetStatus(status string)
	SetMax(max int)
	SetProgress(progress int)
}

// NopObserver ignores all updates
type NopObserver struct{}

func (NopObserver) SetStatus(string) {}
func (NopObserver) SetMax(int)       {}
func (NopObserver) SetProgress(int)  {}

// SoftFailure is something that could not be installed but does not fail the whole installation
type SoftFailure struct {
	Stage  string
	Target string
	Err    error
}

// InstallReport is the result of Install
type InstallReport struct {
	// Installed are the version ids in the order they were installed (parents first)
	Installed    []string
	SoftFailures []SoftFailure
}

func (r *InstallReport) fail(stage string, target string, err error) {
	r.SoftFailures = append(r.SoftFailures, SoftFailure{Stage: stage, Target: target, Err: err})
}

type installState int

const (
	stateResolve installState = iota
	stateInstallParent
	stateInstallLibraries
	stateInstallAssets
	stateInstallMainArtifact
	stateInstallRuntime
	stateDone
)

func (s installState) String() string {
	switch s {
	case stateResolve:
		return "resolve"
	case stateInstallParent:
		return "parent"
	case stateInstallLibraries:
		return "libraries"
	case stateInstallAssets:
		return "assets"
	case stateInstallMainArtifact:
		return "client"
	case stateInstallRuntime:
		return "runtime"
	default:
		return "done"
	}
}

// installContext does not change while one version is installed
type installContext struct {
	id    string
	depth int
}

// Install installs the version with all its parents, libraries, assets, client jar and java runtime.
// Failing library and asset downloads are collected in the report and do not return an error.
func (i *Instance) Install(ctx context.Context, id string, observer Observer) (*InstallReport, error) {
	if observer == nil {
		observer = NopObserver{}
	}
	report := &InstallReport{}
	err := i.install(ctx, installContext{id: id}, observer, report)
	return report, err
}

func (i *Instance) install(ctx context.Context, ic installContext, observer Observer, report *InstallReport) error {
	// own is the manifest as stored on disk, man has the parents merged into it
	var own, man *minecraft.LaunchManifest

	state := stateResolve
	for state != stateDone {
		if err := ctx.Err(); err != nil {
			return err
		}
		i.Logger.Debug("install", "version", ic.id, "state", state)

		var err error
		switch state {
		case stateResolve:
			if ic.depth > maxInheritanceDepth {
				return errors.Wrapf(merrors.ErrRecursionLimit, "installing %s", ic.id)
			}
			observer.SetStatus("Resolving " + ic.id)
			own, err = i.loadManifest(ctx, ic.id)
			man = own
			state = stateInstallLibraries
			if err == nil && own.InheritsFrom != "" {
				state = stateInstallParent
			}
		case stateInstallParent:
			parentCtx := installContext{id: own.InheritsFrom, depth: ic.depth + 1}
			if err = i.install(ctx, parentCtx, observer, report); err == nil {
				var parent *minecraft.LaunchManifest
				parent, err = i.resolve(ctx, parentCtx.id, parentCtx.depth)
				if err == nil {
					man = minecraft.MergeManifests(parent, own)
				}
			}
			state = stateInstallLibraries
		case stateInstallLibraries:
			err = i.installLibraries(ctx, man, observer, report)
			state = stateInstallAssets
		case stateInstallAssets:
			err = i.installAssets(ctx, man, observer, report)
			state = stateInstallMainArtifact
		case stateInstallMainArtifact:
			err = i.installMainArtifact(ctx, own, man, observer)
			state = stateInstallRuntime
		case stateInstallRuntime:
			err = i.installRuntime(ctx, man, observer, report)
			state = stateDone
		}
		if err != nil {
			return err
		}
	}

	report.Installed = append(report.Installed, ic.id)
	observer.SetStatus("Installation complete")
	return nil
}

type nativeJar struct {
	path    string
	exclude []string
}

func (i *Instance) installLibraries(ctx context.Context, man *minecraft.LaunchManifest, observer Observer, report *InstallReport) error {
	mgr := downloadmgr.New(i.Root, i.HTTP)
	mgr.Logger = i.Logger
	var natives []nativeJar

	for _, lib := range man.Libraries.Required(i.environment(nil)) {
		if !lib.IsNativesOnly() {
			p, err := lib.Filepath()
			if err != nil {
				report.fail(stateInstallLibraries.String(), lib.Name, err)
				continue
			}
			url, _ := lib.DownloadURL()
			mgr.Add(downloadmgr.NewItem(url, filepath.Join(i.LibrariesDir(), filepath.FromSlash(p)), lib.Sha1()))
		}

		classifier := lib.NativeClassifier(i.Platform)
		if classifier == "" {
			continue
		}
		p, err := lib.NativeFilepath(classifier)
		if err != nil {
			report.fail(stateInstallLibraries.String(), lib.Name, err)
			continue
		}
		url, sha1, _ := lib.NativeDownload(classifier)
		target := filepath.Join(i.LibrariesDir(), filepath.FromSlash(p))
		mgr.Add(downloadmgr.NewItem(url, target, sha1))
		natives = append(natives, nativeJar{path: target, exclude: lib.ExtractExcludes()})
	}

	observer.SetStatus("Download Libraries")
	observer.SetMax(mgr.Len())
	mgr.OnProgress = func(done int, total int) { observer.SetProgress(done) }

	dl, err := mgr.Start(ctx)
	if err != nil {
		return err
	}
	for _, f := range dl.Failures {
		report.fail(stateInstallLibraries.String(), f.Item.Target, f.Err)
	}

	if len(natives) == 0 {
		return nil
	}
	observer.SetStatus("Extract Natives")
	nativesDir := i.NativesDir(man.ID)
	for _, n := range natives {
		if _, err := os.Stat(n.path); err != nil {
			// download failed, already reported
			continue
		}
		if err := ExtractNatives(n.path, nativesDir, n.exclude); err != nil {
			if errors.Is(err, merrors.ErrPathEscape) {
				return err
			}
			report.fail(stateInstallLibraries.String(), n.path, err)
		}
	}
	return nil
}

func (i *Instance) installAssets(ctx context.Context, man *minecraft.LaunchManifest, observer Observer, report *InstallReport) error {
	stage := stateInstallAssets.String()

	// the log4j config lives next to the assets
	if man.Logging != nil && man.Logging.Client != nil && man.Logging.Client.File.URL != "" {
		file := man.Logging.Client.File
		target := filepath.Join(i.AssetsDir(), "log_configs", file.ID)
		if _, err := downloadmgr.Fetch(ctx, i.HTTP, downloadmgr.NewItem(file.URL, target, file.Sha1), i.Root); err != nil {
			if errors.Is(err, merrors.ErrPathEscape) {
				return err
			}
			report.fail(stage, target, err)
		}
	}

	if man.AssetIndex.URL == "" {
		return nil
	}

	indexPath := filepath.Join(i.AssetsDir(), "indexes", man.AssetsName()+".json")
	indexItem := downloadmgr.NewItem(man.AssetIndex.URL, indexPath, man.AssetIndex.Sha1)
	if _, err := downloadmgr.Fetch(ctx, i.HTTP, indexItem, i.Root); err != nil {
		if errors.Is(err, merrors.ErrPathEscape) {
			return err
		}
		report.fail(stage, indexPath, err)
		return nil
	}

	buf, err := os.ReadFile(indexPath)
	if err != nil {
		report.fail(stage, indexPath, err)
		return nil
	}
	assets := minecraft.AssetIndex{}
	if err := json.Unmarshal(buf, &assets); err != nil {
		report.fail(stage, indexPath, &merrors.SchemaError{Source: indexPath, Field: "objects", Err: err})
		return nil
	}

	mgr := downloadmgr.New(i.Root, i.HTTP)
	mgr.Logger = i.Logger
	names := assets.Names()
	for _, name := range names {
		asset := assets.Objects[name]
		if len(asset.Hash) < 2 {
			report.fail(stage, name, &merrors.SchemaError{Source: indexPath, Field: "hash"})
			continue
		}
		target := filepath.Join(i.AssetsDir(), "objects", filepath.FromSlash(asset.UnixPath()))
		mgr.Add(downloadmgr.NewItem(asset.DownloadURL(i.ResourcesURL), target, asset.Hash))
	}

	observer.SetStatus("Download Assets")
	observer.SetMax(mgr.Len())
	mgr.OnProgress = func(done int, total int) { observer.SetProgress(done) }

	dl, err := mgr.Start(ctx)
	if err != nil {
		return err
	}
	for _, f := range dl.Failures {
		report.fail(stage, f.Item.Target, f.Err)
	}

	if assets.Virtual || assets.MapToResources {
		return i.copyLegacyAssets(&assets, names, report)
	}
	return nil
}

// copyLegacyAssets places the assets of old versions in assets/virtual/legacy by their name
func (i *Instance) copyLegacyAssets(assets *minecraft.AssetIndex, names []string, report *InstallReport) error {
	legacyDir := filepath.Join(i.AssetsDir(), "virtual", "legacy")
	for _, name := range names {
		asset := assets.Objects[name]
		if len(asset.Hash) < 2 {
			continue
		}
		target := filepath.Join(legacyDir, filepath.FromSlash(name))
		if err := downloadmgr.CheckInside(legacyDir, target); err != nil {
			return err
		}
		if _, err := os.Stat(target); err == nil {
			continue
		}
		src := filepath.Join(i.AssetsDir(), "objects", filepath.FromSlash(asset.UnixPath()))
		if err := copyFile(src, target); err != nil {
			report.fail(stateInstallAssets.String(), target, err)
		}
	}
	return nil
}

func (i *Instance) installMainArtifact(ctx context.Context, own *minecraft.LaunchManifest, man *minecraft.LaunchManifest, observer Observer) error {
	jar := filepath.Join(i.Root, filepath.FromSlash(man.JarPath()))

	if client, ok := man.ClientDownload(); ok {
		observer.SetStatus("Download " + filepath.Base(jar))
		if _, err := downloadmgr.Fetch(ctx, i.HTTP, downloadmgr.NewItem(client.URL, jar, client.Sha1), i.Root); err != nil {
			return err
		}
	}

	if own.InheritsFrom == "" {
		return nil
	}
	if _, err := os.Stat(jar); err == nil {
		return nil
	}

	// old forge versions do not have their own jar, they use the one of the parent
	parentJar := filepath.Join(i.VersionDir(own.InheritsFrom), own.InheritsFrom+".jar")
	if err := downloadmgr.CheckInside(i.Root, parentJar); err != nil {
		return err
	}
	if err := downloadmgr.CheckInside(i.Root, jar); err != nil {
		return err
	}
	if _, err := os.Stat(parentJar); err != nil {
		return errors.Wrapf(merrors.ErrNotFound, "no client jar for %s (looked for %s)", own.ID, parentJar)
	}
	i.Logger.Debug("copying parent jar", "from", parentJar, "to", jar)
	return copyFile(parentJar, jar)
}

func (i *Instance) installRuntime(ctx context.Context, man *minecraft.LaunchManifest, observer Observer, report *InstallReport) error {
	if man.JavaVersion == nil || man.JavaVersion.Component == "" {
		return nil
	}
	component := man.JavaVersion.Component

	installer := *i.Java
	installer.Observer = observer
	err := installer.Install(ctx, component)
	if errors.Is(err, merrors.ErrNotFound) {
		// the version can still be launched with another java
		report.fail(stateInstallRuntime.String(), component, err)
		return nil
	}
	return err
}

func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
