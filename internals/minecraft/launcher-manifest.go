package minecraft

import (
	"github.com/minepkg/mclaunch/internals/merrors"
)

// LaunchManifest is a version.json manifest that is used to launch minecraft instances
type LaunchManifest struct {
	ID  string `json:"id"`
	Jar string `json:"jar,omitempty"`
	// MinecraftArguments are used before 1.13
	MinecraftArguments string `json:"minecraftArguments,omitempty"`
	// Arguments is the new (complicated) system
	Arguments  Arguments           `json:"arguments,omitempty"`
	AssetIndex AssetIndexReference `json:"assetIndex,omitempty"`
	Assets     string              `json:"assets,omitempty"`
	// Downloads are keyed by role ("client", "server", etc.)
	Downloads       map[string]Artifact `json:"downloads,omitempty"`
	JavaVersion     *JavaVersion        `json:"javaVersion,omitempty"`
	Libraries       Libraries           `json:"libraries"`
	Logging         *Logging            `json:"logging,omitempty"`
	MainClass       string              `json:"mainClass"`
	ReleaseTime     string              `json:"releaseTime,omitempty"`
	Type            string              `json:"type,omitempty"`
	ComplianceLevel int                 `json:"complianceLevel,omitempty"`
	// InheritsFrom is empty after the manifest was resolved
	InheritsFrom string `json:"inheritsFrom,omitempty"`
}

// Arguments are grouped by the phase they are used in
type Arguments struct {
	Game []Argument `json:"game,omitempty"`
	JVM  []Argument `json:"jvm,omitempty"`
}

// AssetIndexReference points to the asset index of a version
type AssetIndexReference struct {
	ID        string `json:"id"`
	Sha1      string `json:"sha1"`
	Size      int    `json:"size"`
	TotalSize int    `json:"totalSize"`
	URL       string `json:"url"`
}

// JavaVersion names the java runtime component a version wants
type JavaVersion struct {
	Component    string `json:"component"`
	MajorVersion int    `json:"majorVersion"`
}

// Logging contains the log4j configuration for the client
type Logging struct {
	Client *LoggingConfig `json:"client,omitempty"`
}

// LoggingConfig is the argument to pass and the file it references
type LoggingConfig struct {
	// Argument contains a ${path} placeholder
	Argument string      `json:"argument"`
	File     LoggingFile `json:"file"`
	Type     string      `json:"type"`
}

// LoggingFile is the log4j xml file
type LoggingFile struct {
	ID   string `json:"id"`
	Sha1 string `json:"sha1"`
	Size int    `json:"size"`
	URL  string `json:"url"`
}

// JarName returns the name of the main jar without the extension
func (l *LaunchManifest) JarName() string {
	if l.Jar != "" {
		return l.Jar
	}
	return l.ID
}

// JarPath returns the path of the main jar relative to the installation root
func (l *LaunchManifest) JarPath() string {
	name := l.JarName()
	return "versions/" + name + "/" + name + ".jar"
}

// AssetsName returns the name used for the asset index
func (l *LaunchManifest) AssetsName() string {
	switch {
	case l.Assets != "":
		return l.Assets
	case l.AssetIndex.ID != "":
		return l.AssetIndex.ID
	default:
		return l.ID
	}
}

// IsLegacy returns true for manifests that only have the flat minecraftArguments string
func (l *LaunchManifest) IsLegacy() bool {
	return l.MinecraftArguments != ""
}

// ClientDownload returns the "client" download if there is one
func (l *LaunchManifest) ClientDownload() (Artifact, bool) {
	a, ok := l.Downloads["client"]
	return a, ok && a.URL != ""
}

// Validate checks the fields a resolved manifest needs to be launchable
func (l *LaunchManifest) Validate() error {
	source := l.ID
	if source == "" {
		source = "manifest"
	}
	switch {
	case l.ID == "":
		return &merrors.SchemaError{Source: source, Field: "id"}
	case l.MainClass == "":
		return &merrors.SchemaError{Source: source, Field: "mainClass"}
	}

	_, hasClient := l.ClientDownload()
	// loader manifests (fabric, quilt) only carry structured arguments
	hasArgs := l.MinecraftArguments != "" || len(l.Arguments.Game) != 0
	if !hasClient && !hasArgs {
		return &merrors.SchemaError{Source: source, Field: "downloads"}
	}
	return nil
}

// MergeManifests returns a new manifest with the child merged over the parent.
// Scalar fields set in the child win, libraries and arguments are
// concatenated parent first. The result does not inherit from anything.
func MergeManifests(parent, child *LaunchManifest) *LaunchManifest {
	merged := *parent

	if child.ID != "" {
		merged.ID = child.ID
	}
	if child.Jar != "" {
		merged.Jar = child.Jar
	}
	if child.MinecraftArguments != "" {
		merged.MinecraftArguments = child.MinecraftArguments
	}
	if child.AssetIndex.ID != "" {
		merged.AssetIndex = child.AssetIndex
	}
	if child.Assets != "" {
		merged.Assets = child.Assets
	}
	if child.JavaVersion != nil {
		merged.JavaVersion = child.JavaVersion
	}
	if child.Logging != nil {
		merged.Logging = child.Logging
	}
	if child.MainClass != "" {
		merged.MainClass = child.MainClass
	}
	if child.ReleaseTime != "" {
		merged.ReleaseTime = child.ReleaseTime
	}
	if child.Type != "" {
		merged.Type = child.Type
	}
	if child.ComplianceLevel != 0 {
		merged.ComplianceLevel = child.ComplianceLevel
	}

	merged.Libraries = concat(parent.Libraries, child.Libraries)
	merged.Arguments = Arguments{
		Game: concat(parent.Arguments.Game, child.Arguments.Game),
		JVM:  concat(parent.Arguments.JVM, child.Arguments.JVM),
	}

	if parent.Downloads != nil || child.Downloads != nil {
		merged.Downloads = make(map[string]Artifact, len(parent.Downloads)+len(child.Downloads))
		for role, a := range parent.Downloads {
			merged.Downloads[role] = a
		}
		for role, a := range child.Downloads {
			merged.Downloads[role] = a
		}
	}

	merged.InheritsFrom = ""
	return &merged
}

// concat never returns a slice sharing memory with a or b
func concat[T any](a, b []T) []T {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
