package minecraft

import (
	"regexp"

	"github.com/minepkg/mclaunch/internals/merrors"
)

// MavenMetadata is the interesting part of a maven-metadata.xml file
type MavenMetadata struct {
	Release  string   `json:"release"`
	Latest   string   `json:"latest"`
	Versions []string `json:"versions"`
}

var (
	mavenRelease = regexp.MustCompile(`<release>(.*?)</release>`)
	mavenLatest  = regexp.MustCompile(`<latest>(.*?)</latest>`)
	mavenVersion = regexp.MustCompile(`<version>(.*?)</version>`)
)

// ParseMavenMetadata extracts release, latest and all versions from a maven-metadata.xml body
func ParseMavenMetadata(body string) (*MavenMetadata, error) {
	release := mavenRelease.FindStringSubmatch(body)
	if release == nil {
		return nil, &merrors.SchemaError{Source: "maven-metadata.xml", Field: "release"}
	}
	latest := mavenLatest.FindStringSubmatch(body)
	if latest == nil {
		return nil, &merrors.SchemaError{Source: "maven-metadata.xml", Field: "latest"}
	}

	meta := &MavenMetadata{
		Release: release[1],
		Latest:  latest[1],
	}
	for _, match := range mavenVersion.FindAllStringSubmatch(body, -1) {
		meta.Versions = append(meta.Versions, match[1])
	}
	return meta, nil
}
