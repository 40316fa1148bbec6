// Package stamp implements the recent-run short circuit.
//
// Build pipelines tend to invoke blocksync several times in quick succession
// on the same tree. A run that finishes successfully touches a stamp file;
// a later run that finds the stamp younger than the recency window skips all
// work.
package stamp

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/types"
)

// DefaultWindow is the default recency window
const DefaultWindow = 30 * time.Second

// Fresh reports whether the stamp at path was touched less than window
// before now. A missing stamp, an empty path or a non-positive window is
// never fresh.
func Fresh(fs types.FS, path string, window time.Duration, now time.Time) bool {
	if path == "" || window <= 0 {
		return false
	}
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	age := now.Sub(info.ModTime())
	return age >= 0 && age < window
}

// Touch creates the stamp at path if needed and sets its time to now
func Touch(fs types.FS, path string, now time.Time) error {
	if path == "" {
		return nil
	}
	if _, err := fs.Stat(path); err != nil {
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "creating stamp directory for %s", path)
		}
		if err := fs.WriteFile(path, nil, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "creating stamp %s", path)
		}
	}
	if err := fs.Chtimes(path, now, now); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "touching stamp %s", path)
	}
	return nil
}
