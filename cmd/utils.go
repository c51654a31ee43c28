package cmd

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

func releasedText(released string) string {
	t, err := time.Parse(time.RFC3339, released)
	if err != nil {
		return released
	}
	return t.Format("2006-01-02") + " (" + humanize.Time(t) + ")"
}

// dirSize returns the size of all regular files in dir
func dirSize(dir string) (uint64, error) {
	var size uint64
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += uint64(info.Size())
		return nil
	})
	return size, err
}
