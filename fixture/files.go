package fixture

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IsFixture reports whether path names a fixture file by its extension.
func IsFixture(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Files expands paths into fixture files. Files are kept as given;
// directories are walked for fixture files in lexical order.
func Files(paths ...string) ([]string, error) {
	var res []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			res = append(res, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsFixture(path) {
				res = append(res, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
