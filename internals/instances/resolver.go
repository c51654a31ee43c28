package instances

import (
	"context"
	"encoding/json"
	"os"

	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/pkg/errors"
)

// ResolveManifest returns the manifest of the version with all parents merged into it.
// Manifests that are not available locally are downloaded to versions/{id}/{id}.json
func (i *Instance) ResolveManifest(ctx context.Context, id string) (*minecraft.LaunchManifest, error) {
	man, err := i.resolve(ctx, id, 0)
	if err != nil {
		return nil, err
	}
	if err := man.Validate(); err != nil {
		return nil, err
	}
	return man, nil
}

func (i *Instance) resolve(ctx context.Context, id string, depth int) (*minecraft.LaunchManifest, error) {
	if depth > maxInheritanceDepth {
		return nil, errors.Wrapf(merrors.ErrRecursionLimit, "resolving %s", id)
	}

	man, err := i.loadManifest(ctx, id)
	if err != nil {
		return nil, err
	}
	if man.InheritsFrom == "" {
		return man, nil
	}

	parent, err := i.resolve(ctx, man.InheritsFrom, depth+1)
	if err != nil {
		return nil, err
	}
	return minecraft.MergeManifests(parent, man), nil
}

// loadManifest reads the unmerged manifest, downloading it first if needed
func (i *Instance) loadManifest(ctx context.Context, id string) (*minecraft.LaunchManifest, error) {
	file := i.manifestPath(id)
	if err := downloadmgr.CheckInside(i.Root, file); err != nil {
		return nil, err
	}

	if _, err := os.Stat(file); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := i.fetchManifest(ctx, id); err != nil {
			return nil, err
		}
	}

	buf, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	man := &minecraft.LaunchManifest{}
	if err := json.Unmarshal(buf, man); err != nil {
		return nil, &merrors.SchemaError{Source: file, Field: "manifest", Err: err}
	}
	return man, nil
}

func (i *Instance) fetchManifest(ctx context.Context, id string) error {
	index, err := i.VersionIndex(ctx)
	if err != nil {
		return err
	}
	entry, ok := index.Find(id)
	if !ok {
		return errors.Wrapf(merrors.ErrNotFound, "version %s", id)
	}
	if entry.URL == "" {
		return &merrors.SchemaError{Source: i.VersionIndexURL, Field: "versions.url"}
	}

	i.Logger.Debug("downloading manifest", "version", id)
	item := downloadmgr.NewItem(entry.URL, i.manifestPath(id), entry.Sha1)
	_, err = downloadmgr.Fetch(ctx, i.HTTP, item, i.Root)
	return err
}
