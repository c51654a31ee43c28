package instances

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// Clean only walks the directories the installer writes to. Saves, mods, configs etc. are never touched
var cleanDirs = []string{
	"libraries",
	"assets",
	"versions",
	"runtime",
}

// download leftovers are named {file}.{random}.tmp
var leftoverRegex = regexp.MustCompile(`.\.\d+\.tmp$`)

// Clean removes leftovers of interrupted downloads and all extracted natives.
// Natives are extracted again by the next install
func (i *Instance) Clean() error {
	for _, dir := range cleanDirs {
		err := filepath.WalkDir(filepath.Join(i.Root, dir), func(p string, d fs.DirEntry, err error) error {
			// dir does not exist. this is fine it is "clean" then
			if os.IsNotExist(err) {
				return nil
			}
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == "natives" && filepath.Base(filepath.Dir(filepath.Dir(p))) == "versions" {
				i.Logger.Debug("removing natives", "path", p)
				if err := os.RemoveAll(p); err != nil {
					return err
				}
				return filepath.SkipDir
			}
			if d.Type().IsRegular() && leftoverRegex.MatchString(d.Name()) {
				i.Logger.Debug("removing download leftover", "path", p)
				return os.Remove(p)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
