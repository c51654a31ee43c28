package minecraft

import (
	"fmt"
	"path"
	"strings"

	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/platform"
)

// DefaultLibraryURL is used for libraries without an explicit url
const DefaultLibraryURL = "https://libraries.minecraft.net"

// Libraries as a collection of minecraft libs
type Libraries []Library

// Required returns only the required libraries (matching rules)
func (l Libraries) Required(env Environment) Libraries {
	required := make(Libraries, 0, len(l))
	for _, lib := range l {
		// did some rules not apply? skip this library
		if !RulesApply(lib.Rules, env) {
			continue
		}
		required = append(required, lib)
	}
	return required
}

// Library is a minecraft library
type Library struct {
	// Name is a maven coordinate like "org.lwjgl:lwjgl:3.3.1"
	Name      string           `json:"name"`
	Downloads LibraryDownloads `json:"downloads,omitempty"`
	// URL is the maven repository to use instead of [DefaultLibraryURL]
	URL string `json:"url,omitempty"`
	// Rules is a list of rules that determine whether this library should be included.
	// If no rules are specified, the library is included by default.
	Rules []Rule `json:"rules,omitempty"`
	// Natives is a map of OS names to classifiers. Values can contain ${arch}
	// This field is no longer used after 1.19
	Natives map[string]string `json:"natives,omitempty"`
	// Extract is used when unpacking natives
	Extract *Extract `json:"extract,omitempty"`
}

// LibraryDownloads are the downloadable files of a library
type LibraryDownloads struct {
	Artifact *Artifact `json:"artifact,omitempty"`
	// Classifiers is a list of additional artifacts.
	// It is used to download native libraries.
	Classifiers map[string]Artifact `json:"classifiers,omitempty"`
}

// Extract lists path prefixes that should not be unpacked from a natives jar
type Extract struct {
	Exclude []string `json:"exclude,omitempty"`
}

// LibraryName is a parsed maven coordinate
type LibraryName struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string
	// Extension defaults to "jar"
	Extension string
}

// ParseLibraryName parses "group:artifact:version[:classifier][@extension]"
func ParseLibraryName(name string) (LibraryName, error) {
	parsed := LibraryName{Extension: "jar"}

	if at := strings.LastIndex(name, "@"); at != -1 {
		parsed.Extension = name[at+1:]
		name = name[:at]
	}

	parts := strings.Split(name, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return LibraryName{}, &merrors.SchemaError{
			Source: name,
			Field:  "name",
			Err:    fmt.Errorf("expected group:artifact:version, got %d parts", len(parts)),
		}
	}
	for _, p := range parts {
		if p == "" {
			return LibraryName{}, &merrors.SchemaError{Source: name, Field: "name", Err: fmt.Errorf("empty part")}
		}
	}

	parsed.Group = parts[0]
	parsed.Artifact = parts[1]
	parsed.Version = parts[2]
	if len(parts) == 4 {
		parsed.Classifier = parts[3]
	}
	return parsed, nil
}

// WithClassifier returns a copy of the name using the given classifier
func (n LibraryName) WithClassifier(classifier string) LibraryName {
	n.Classifier = classifier
	return n
}

// Path returns the maven path relative to the repository root (always using /)
func (n LibraryName) Path() string {
	file := n.Artifact + "-" + n.Version
	if n.Classifier != "" {
		file += "-" + n.Classifier
	}
	file += "." + n.Extension

	return path.Join(strings.ReplaceAll(n.Group, ".", "/"), n.Artifact, n.Version, file)
}

func (n LibraryName) String() string {
	s := n.Group + ":" + n.Artifact + ":" + n.Version
	if n.Classifier != "" {
		s += ":" + n.Classifier
	}
	if n.Extension != "jar" {
		s += "@" + n.Extension
	}
	return s
}

// IsNativesOnly returns true if this library only carries natives and no main artifact
func (l *Library) IsNativesOnly() bool {
	return len(l.Natives) != 0 && l.Downloads.Artifact == nil
}

// Filepath returns the target filepath relative to the libraries folder (using /)
func (l *Library) Filepath() (string, error) {
	if a := l.Downloads.Artifact; a != nil && a.Path != "" {
		return a.Path, nil
	}
	name, err := ParseLibraryName(l.Name)
	if err != nil {
		return "", err
	}
	return name.Path(), nil
}

// DownloadURL returns the download url of the main artifact
func (l *Library) DownloadURL() (string, error) {
	if a := l.Downloads.Artifact; a != nil && a.URL != "" {
		return a.URL, nil
	}
	p, err := l.Filepath()
	if err != nil {
		return "", err
	}
	return l.repository() + "/" + p, nil
}

// Sha1 returns the checksum of the main artifact if the manifest has one
func (l *Library) Sha1() string {
	if l.Downloads.Artifact != nil {
		return l.Downloads.Artifact.Sha1
	}
	return ""
}

func (l *Library) repository() string {
	if l.URL != "" {
		return strings.TrimSuffix(l.URL, "/")
	}
	return DefaultLibraryURL
}

// NativeClassifier returns the natives classifier for the given platform
// or an empty string if there are no natives for it
func (l *Library) NativeClassifier(p platform.Info) string {
	classifier, ok := l.Natives[p.OS]
	if !ok {
		return ""
	}
	return strings.ReplaceAll(classifier, "${arch}", p.ArchBits())
}

// NativeFilepath returns the path of the natives jar relative to the libraries folder
func (l *Library) NativeFilepath(classifier string) (string, error) {
	if a, ok := l.Downloads.Classifiers[classifier]; ok && a.Path != "" {
		return a.Path, nil
	}
	name, err := ParseLibraryName(l.Name)
	if err != nil {
		return "", err
	}
	return name.WithClassifier(classifier).Path(), nil
}

// NativeDownload returns url and sha1 of the natives jar
func (l *Library) NativeDownload(classifier string) (url string, sha1 string, err error) {
	if a, ok := l.Downloads.Classifiers[classifier]; ok && a.URL != "" {
		return a.URL, a.Sha1, nil
	}
	p, err := l.NativeFilepath(classifier)
	if err != nil {
		return "", "", err
	}
	return l.repository() + "/" + p, "", nil
}

// ExtractExcludes returns the path prefixes to skip when unpacking natives
func (l *Library) ExtractExcludes() []string {
	if l.Extract == nil || len(l.Extract.Exclude) == 0 {
		return []string{"META-INF/"}
	}
	return l.Extract.Exclude
}
