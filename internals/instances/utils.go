package instances

import (
	"github.com/klauspost/compress/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
	"github.com/minepkg/mclaunch/internals/downloadmgr"
)

// ExtractNatives unpacks the native libraries contained in jar into dir.
// Entries starting with one of the exclude prefixes are skipped. An entry that would
// end up outside of dir fails the whole extraction
func ExtractNatives(jar string, dir string, exclude []string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	// archiver flattens errors returned from the walk func
	var escape error

	// jars are zip files, but archiver can not detect that from the extension
	err := archiver.NewZip().Walk(jar, func(f archiver.File) error {
		if f.IsDir() {
			return nil
		}
		name := f.Name()
		if header, ok := f.Header.(zip.FileHeader); ok {
			name = header.Name
		}
		for _, prefix := range exclude {
			if strings.HasPrefix(name, prefix) {
				return nil
			}
		}

		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := downloadmgr.CheckInside(dir, target); err != nil {
			escape = err
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
			return err
		}
		dest, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(dest, f); err != nil {
			dest.Close()
			return err
		}
		return dest.Close()
	})
	if escape != nil {
		return escape
	}
	return err
}
