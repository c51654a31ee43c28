package instances

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/pkg/errors"
)

// FilterVersions returns the versions matching the semver constraint (eg. "~1.20").
// Versions that are not valid semver (snapshots like "23w13a") never match
func FilterVersions(versions []minecraft.VersionInfo, constraint string) ([]minecraft.VersionInfo, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, err
	}

	matching := make([]minecraft.VersionInfo, 0)
	for _, v := range versions {
		// TODO: some old versions contain spaces
		semverVersion, err := semver.NewVersion(v.ID)

		// skip unparsable minecraft versions
		if err != nil {
			continue
		}

		if c.Check(semverVersion) {
			matching = append(matching, v)
		}
	}
	return matching, nil
}

// ResolveRequirement returns the newest version from the index matching the constraint
func (i *Instance) ResolveRequirement(ctx context.Context, constraint string) (*minecraft.VersionInfo, error) {
	versions, err := i.GetVersionList(ctx)
	if err != nil {
		return nil, err
	}
	matching, err := FilterVersions(versions, constraint)
	if err != nil {
		return nil, err
	}

	// the index is sorted newest first
	if len(matching) == 0 {
		return nil, errors.Wrapf(merrors.ErrNotFound, "no version matches %s", constraint)
	}
	return &matching[0], nil
}
