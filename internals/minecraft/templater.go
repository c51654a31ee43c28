package minecraft

import (
	"path/filepath"
	"strings"

	"github.com/minepkg/mclaunch/internals/platform"
)

// Templater replaces the ${variables} used in launch manifest arguments
type Templater struct {
	Manifest *LaunchManifest
	Options  *LaunchOptions
	// Root is the installation root (the .minecraft directory)
	Root      string
	Classpath string
	Platform  platform.Info

	replacer *strings.Replacer
}

// NewTemplater returns a templater for the given manifest. The options are not modified
func NewTemplater(man *LaunchManifest, opts *LaunchOptions, root string, classpath string, p platform.Info) *Templater {
	return &Templater{
		Manifest:  man,
		Options:   opts.Clone(),
		Root:      root,
		Classpath: classpath,
		Platform:  p,
	}
}

// NativesDirectory returns the directory natives are extracted to
func (t *Templater) NativesDirectory() string {
	if t.Options.NativesDirectory != "" {
		return t.Options.NativesDirectory
	}
	return filepath.Join(t.Root, "versions", t.Manifest.ID, "natives")
}

// Values returns the value of every known variable
func (t *Templater) Values() map[string]string {
	opts := t.Options
	man := t.Manifest

	gameDir := opts.GameDirectory
	if gameDir == "" {
		gameDir = t.Root
	}

	return map[string]string{
		"natives_directory":   t.NativesDirectory(),
		"launcher_name":       or(opts.LauncherName, "mclaunch"),
		"launcher_version":    or(opts.LauncherVersion, "0.0.0"),
		"classpath":           t.Classpath,
		"classpath_separator": t.Platform.ClasspathSeparator(),
		"library_directory":   filepath.Join(t.Root, "libraries"),

		"auth_player_name":  or(opts.Username, "{username}"),
		"auth_uuid":         or(opts.UUID, "{uuid}"),
		"auth_access_token": or(opts.Token, "{token}"),
		"auth_session":      or(opts.Token, "{token}"),
		"user_type":         "msa",
		"user_properties":   "{}",

		"version_name":      man.ID,
		"version_type":      man.Type,
		"game_directory":    gameDir,
		"assets_root":       filepath.Join(t.Root, "assets"),
		"assets_index_name": man.AssetsName(),
		"game_assets":       filepath.Join(t.Root, "assets", "virtual", "legacy"),

		"resolution_width":  or(opts.ResolutionWidth, "854"),
		"resolution_height": or(opts.ResolutionHeight, "480"),

		"quickPlayPath":         or(opts.QuickPlayPath, "{quickPlayPath}"),
		"quickPlaySingleplayer": or(opts.QuickPlaySingleplayer, "{quickPlaySingleplayer}"),
		"quickPlayMultiplayer":  or(opts.QuickPlayMultiplayer, "{quickPlayMultiplayer}"),
		"quickPlayRealms":       or(opts.QuickPlayRealms, "{quickPlayRealms}"),
	}
}

// Expand replaces all known ${variables} in the template. Unknown ones are kept
func (t *Templater) Expand(template string) string {
	if t.replacer == nil {
		values := t.Values()
		replacerArgs := make([]string, 0, len(values)*2)
		for k, v := range values {
			replacerArgs = append(replacerArgs, "${"+k+"}", v)
		}
		t.replacer = strings.NewReplacer(replacerArgs...)
	}
	return t.replacer.Replace(template)
}

// ExpandArguments expands every argument that applies to the current environment
func (t *Templater) ExpandArguments(args []Argument) []string {
	env := Environment{Platform: t.Platform, Options: t.Options}
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if !arg.Applies(env) {
			continue
		}
		for _, value := range arg.Values() {
			expanded = append(expanded, t.Expand(value))
		}
	}
	return expanded
}

// GameArguments returns the expanded game arguments
func (t *Templater) GameArguments() []string {
	if !t.Manifest.IsLegacy() {
		return t.ExpandArguments(t.Manifest.Arguments.Game)
	}

	// the legacy format does not know about resolution or demo mode
	var args []string
	for _, arg := range strings.Split(t.Manifest.MinecraftArguments, " ") {
		if arg == "" {
			continue
		}
		args = append(args, t.Expand(arg))
	}
	if t.Options.CustomResolution {
		args = append(args,
			"--width", or(t.Options.ResolutionWidth, "854"),
			"--height", or(t.Options.ResolutionHeight, "480"),
		)
	}
	if t.Options.Demo {
		args = append(args, "--demo")
	}
	return args
}

// JVMArguments returns the expanded jvm arguments. Legacy manifests get the
// natives directory and classpath
func (t *Templater) JVMArguments() []string {
	if len(t.Manifest.Arguments.JVM) != 0 {
		return t.ExpandArguments(t.Manifest.Arguments.JVM)
	}
	return []string{
		"-Djava.library.path=" + t.NativesDirectory(),
		"-cp",
		t.Classpath,
	}
}

func or(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
