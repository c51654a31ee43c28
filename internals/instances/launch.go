package instances

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/pkg/errors"
)

// Classpath returns the separator joined list of all library jars the manifest needs.
// The main jar is always the last entry
func (i *Instance) Classpath(man *minecraft.LaunchManifest, opts *minecraft.LaunchOptions) (string, error) {
	var cpArgs []string

	for _, lib := range man.Libraries.Required(i.environment(opts)) {
		if !lib.IsNativesOnly() {
			p, err := lib.Filepath()
			if err != nil {
				return "", err
			}
			cpArgs = append(cpArgs, filepath.Join(i.LibrariesDir(), filepath.FromSlash(p)))
		}

		if classifier := lib.NativeClassifier(i.Platform); classifier != "" {
			p, err := lib.NativeFilepath(classifier)
			if err != nil {
				return "", err
			}
			cpArgs = append(cpArgs, filepath.Join(i.LibrariesDir(), filepath.FromSlash(p)))
		}
	}

	// finally append the minecraft.jar
	cpArgs = append(cpArgs, filepath.Join(i.Root, filepath.FromSlash(man.JarPath())))

	return strings.Join(cpArgs, i.Platform.ClasspathSeparator()), nil
}

// BuildLaunchCommand returns the full command (executable first) to launch the given version.
// The version has to be installed, opts are not modified
func (i *Instance) BuildLaunchCommand(ctx context.Context, id string, opts *minecraft.LaunchOptions) ([]string, error) {
	if !i.IsInstalled(id) {
		return nil, errors.Wrapf(merrors.ErrNotFound, "version %s is not installed", id)
	}

	man, err := i.ResolveManifest(ctx, id)
	if err != nil {
		return nil, err
	}
	opts = opts.Clone()

	classpath, err := i.Classpath(man, opts)
	if err != nil {
		return nil, err
	}
	templater := minecraft.NewTemplater(man, opts, i.Root, classpath, i.Platform)

	command := []string{i.executable(ctx, man, opts)}
	command = append(command, opts.JVMArguments...)
	command = append(command, templater.JVMArguments()...)

	if opts.EnableLoggingConfig && man.Logging != nil && man.Logging.Client != nil {
		logging := man.Logging.Client
		configPath := filepath.Join(i.AssetsDir(), "log_configs", logging.File.ID)
		command = append(command, strings.ReplaceAll(logging.Argument, "${path}", configPath))
	}

	command = append(command, man.MainClass)
	command = append(command, templater.GameArguments()...)

	if opts.Server != "" {
		command = append(command, "--server", opts.Server)
		if opts.Port != "" {
			command = append(command, "--port", opts.Port)
		}
	}
	if opts.DisableMultiplayer {
		command = append(command, "--disableMultiplayer")
	}
	if opts.DisableChat {
		command = append(command, "--disableChatFeature")
	}

	return command, nil
}

// executable picks the java binary. A runtime that is not installed falls back to "java"
func (i *Instance) executable(ctx context.Context, man *minecraft.LaunchManifest, opts *minecraft.LaunchOptions) string {
	if opts.ExecutablePath != "" {
		return opts.ExecutablePath
	}

	if man.JavaVersion != nil && man.JavaVersion.Component != "" {
		if i.Locator == nil {
			return "java"
		}
		bin, err := i.Locator.Locate(ctx, man.JavaVersion.Component)
		if err != nil {
			i.Logger.Warn("runtime not available, using system java", "component", man.JavaVersion.Component, "err", err)
			return "java"
		}
		return bin
	}

	if opts.DefaultExecutablePath != "" {
		return opts.DefaultExecutablePath
	}
	return "java"
}

// FindMissingLibraries returns all required libraries whose jar is not on disk
func (i *Instance) FindMissingLibraries(man *minecraft.LaunchManifest) (minecraft.Libraries, error) {
	missing := make(minecraft.Libraries, 0)

	for _, lib := range man.Libraries.Required(i.environment(nil)) {
		var rel string
		var err error
		if lib.IsNativesOnly() {
			classifier := lib.NativeClassifier(i.Platform)
			if classifier == "" {
				continue
			}
			rel, err = lib.NativeFilepath(classifier)
		} else {
			rel, err = lib.Filepath()
		}
		if err != nil {
			return nil, err
		}

		if _, err := os.Stat(filepath.Join(i.LibrariesDir(), filepath.FromSlash(rel))); err == nil {
			continue
		}
		missing = append(missing, lib)
	}

	return missing, nil
}
