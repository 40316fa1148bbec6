// Package writer persists reconciled files.
package writer

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/logging"
	"github.com/arthur-debert/blocksync/pkg/types"
	"github.com/rs/zerolog"
)

const defaultPerm fs.FileMode = 0644

// Writer overwrites files with their reconciled lines
type Writer struct {
	fs     types.FS
	dryRun bool
	logger zerolog.Logger
}

// New creates a writer. In dry-run mode nothing is written.
func New(fs types.FS, dryRun bool) *Writer {
	return &Writer{
		fs:     fs,
		dryRun: dryRun,
		logger: logging.GetLogger("writer"),
	}
}

// Write joins file's lines with \n and replaces the file's content. No
// newline is appended after the last line.
func (w *Writer) Write(file *types.SourceFile) error {
	if w.dryRun {
		w.logger.Info().Str("file", file.Path).Msg("Dry run, not writing")
		return nil
	}

	perm := defaultPerm
	if info, err := w.fs.Stat(file.Path); err == nil {
		perm = info.Mode().Perm()
	}

	data := []byte(strings.Join(file.Lines, "\n"))
	if err := w.fs.WriteFile(file.Path, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", file.Path)
	}

	w.logger.Info().Str("file", file.Path).Int("lines", len(file.Lines)).Msg("File updated")
	return nil
}
