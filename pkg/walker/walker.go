// Package walker enumerates candidate source files under a set of roots.
package walker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/logging"
	"github.com/arthur-debert/blocksync/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultExtensions is the reference extension set
var DefaultExtensions = []string{".h", ".hpp", ".cpp", ".c", ".inl"}

// skippedDirs are never descended into
var skippedDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// Walker finds files whose extension is in a configured set
type Walker struct {
	fs         types.FS
	extensions map[string]bool
	logger     zerolog.Logger
}

// New creates a walker. Extensions are matched case-insensitively and may be
// given with or without the leading dot.
func New(fs types.FS, extensions []string) *Walker {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[strings.ToLower(ext)] = true
	}
	return &Walker{
		fs:         fs,
		extensions: set,
		logger:     logging.GetLogger("walker"),
	}
}

// Matches reports whether path has one of the walker's extensions
func (w *Walker) Matches(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

// Files returns matching regular files under roots. Each root is walked in
// lexical order and roots are visited in the order given; a file reachable
// from several roots is listed once.
func (w *Walker) Files(roots []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, root := range roots {
		if _, err := w.fs.Stat(root); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot scan root %s", root)
		}

		err := w.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				w.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
				return nil
			}
			if info.IsDir() {
				if path != root && skippedDirs[info.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if !info.Mode().IsRegular() || !w.Matches(path) {
				return nil
			}

			clean := filepath.Clean(path)
			if !seen[clean] {
				seen[clean] = true
				files = append(files, clean)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to walk %s", root)
		}
	}

	w.logger.Debug().Strs("roots", roots).Int("files", len(files)).Msg("Enumerated candidate files")
	return files, nil
}
