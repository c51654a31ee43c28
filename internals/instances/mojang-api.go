package instances

import (
	"context"
	"encoding/json"

	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/minecraft"
)

var (
	// TypeSnapshot is a snapshot release
	TypeSnapshot = "snapshot"
	// TypeRelease is a full "normal" release
	TypeRelease = "release"
	// TypeOldBeta is a "old_beta" release
	TypeOldBeta = "old_beta"
	// TypeOldAlpha is a "old_alpha" release
	TypeOldAlpha = "old_alpha"
)

// VersionIndex returns the index of all available versions. It is cached for an hour
func (i *Instance) VersionIndex(ctx context.Context) (*minecraft.VersionIndex, error) {
	buf, err := i.Cache.Get(ctx, i.VersionIndexURL)
	if err != nil {
		return nil, err
	}
	parsed := minecraft.VersionIndex{}
	if err := json.Unmarshal(buf, &parsed); err != nil {
		return nil, &merrors.SchemaError{Source: i.VersionIndexURL, Field: "versions", Err: err}
	}
	return &parsed, nil
}

// GetLatestVersion returns the id of the latest release and snapshot
func (i *Instance) GetLatestVersion(ctx context.Context) (release string, snapshot string, err error) {
	index, err := i.VersionIndex(ctx)
	if err != nil {
		return "", "", err
	}
	return index.Latest.Release, index.Latest.Snapshot, nil
}

// GetVersionList returns all versions from the version index
func (i *Instance) GetVersionList(ctx context.Context) ([]minecraft.VersionInfo, error) {
	index, err := i.VersionIndex(ctx)
	if err != nil {
		return nil, err
	}
	versions := make([]minecraft.VersionInfo, 0, len(index.Versions))
	for _, v := range index.Versions {
		versions = append(versions, minecraft.VersionInfo{
			ID:              v.ID,
			Type:            v.Type,
			ReleaseTime:     v.ReleaseTime,
			ComplianceLevel: v.ComplianceLevel,
		})
	}
	return versions, nil
}

// GetMavenMetadata fetches and parses a maven-metadata.xml file
func (i *Instance) GetMavenMetadata(ctx context.Context, url string) (*minecraft.MavenMetadata, error) {
	body, err := i.Cache.GetString(ctx, url)
	if err != nil {
		return nil, err
	}
	return minecraft.ParseMavenMetadata(body)
}
