package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ardnew/rpnsheet/pkg"
)

// baseConfig is the base name of the YAML configuration file.
const baseConfig = "config.yaml"

// defaultDirMode is the permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// userDir returns the pkg.Name subdirectory of the directory reported by
// base. If base fails, hidden is used beneath the home directory, and the
// working directory after that.
func userDir(base func() (string, error), hidden string) string {
	dir, err := base()
	if err != nil {
		if dir, err = os.UserHomeDir(); err == nil {
			dir = filepath.Join(dir, hidden)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, pkg.Name)
}

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// cacheDir returns the cache directory path used for history and profiles.
var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath returns the path formed by joining the configuration directory
// with elem.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return pkg.ErrCreateDir.Wrap(err)
		}
	}

	return nil
}
