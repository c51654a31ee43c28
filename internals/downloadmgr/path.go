package downloadmgr

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/pkg/errors"
)

// CheckInside returns merrors.ErrPathEscape if p does not end up inside of root.
// Symlinks are followed as far as the paths already exist.
func CheckInside(root string, p string) error {
	realRoot, err := resolveExisting(root)
	if err != nil {
		return err
	}
	realPath, err := resolveExisting(p)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(realRoot, realPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.Wrapf(merrors.ErrPathEscape, "%s is outside of %s", p, root)
	}
	return nil
}

// resolveExisting makes p absolute and evaluates symlinks of the longest existing prefix
func resolveExisting(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}

	existing := abs
	var rest []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			// nothing exists, not even the volume
			return abs, nil
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}

	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{resolved}, rest...)...), nil
}
