package instances

import (
	"context"
	"os"

	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/pkg/errors"
)

// OutdatedVersions returns the installed versions whose manifest differs from
// the one currently published in the version index. Reinstalling them fetches the new one.
// Versions the index does not know are never outdated
func (i *Instance) OutdatedVersions(ctx context.Context) ([]string, error) {
	installed, err := i.GetInstalledVersions()
	if err != nil {
		return nil, err
	}
	index, err := i.VersionIndex(ctx)
	if err != nil {
		return nil, err
	}

	outdated := make([]string, 0)
	for _, local := range installed {
		entry, ok := index.Find(local.ID)
		// modded version or index without checksums
		if !ok || entry.Sha1 == "" {
			continue
		}

		sum, err := downloadmgr.Sha1File(i.manifestPath(local.ID))
		if err != nil {
			return nil, err
		}
		if sum != entry.Sha1 {
			outdated = append(outdated, local.ID)
		}
	}
	return outdated, nil
}

// Refresh removes the outdated manifest of a version, so the next install downloads it again.
// Cached remote documents are dropped as well.
// Versions the index does not know (modded ones) are never removed, their manifest can not be downloaded again
func (i *Instance) Refresh(ctx context.Context, id string) error {
	file := i.manifestPath(id)
	if err := downloadmgr.CheckInside(i.Root, file); err != nil {
		return err
	}
	i.Cache.Purge()

	index, err := i.VersionIndex(ctx)
	if err != nil {
		return err
	}
	if _, ok := index.Find(id); !ok {
		return errors.Wrapf(merrors.ErrNotFound, "version %s is not in the version index, its manifest can not be downloaded again", id)
	}
	err = os.Remove(file)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
