package cmd

import (
	"context"
	"strings"

	"github.com/minepkg/mclaunch/internals/instances"
)

// resolveVersionArg turns "latest", "snapshot" or a semver constraint like "~1.20" into a version id.
// Everything else is returned as is
func resolveVersionArg(ctx context.Context, instance *instances.Instance, arg string) (string, error) {
	switch arg {
	case "", "latest", "release":
		release, _, err := instance.GetLatestVersion(ctx)
		return release, err
	case "snapshot":
		_, snapshot, err := instance.GetLatestVersion(ctx)
		return snapshot, err
	}

	if strings.ContainsAny(arg, "^~<>=*,| ") {
		version, err := instance.ResolveRequirement(ctx, arg)
		if err != nil {
			return "", err
		}
		return version.ID, nil
	}
	return arg, nil
}
