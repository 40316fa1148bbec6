//go:build windows

package lock

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/logging"
)

// Lock represents an exclusive lock held by this process.
// On Windows the lock is the existence of the file, created with O_EXCL.
type Lock struct {
	path string
	file *os.File
}

// Acquire blocks until the lock at path is held or ctx is done
func Acquire(ctx context.Context, path string) (*Lock, error) {
	logger := logging.GetLogger("lock")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLock, "creating lock directory for %s", path)
	}

	waited := false
	for {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
		if err == nil {
			_, _ = file.WriteString(strconv.Itoa(os.Getpid()))
			logger.Debug().Str("path", path).Msg("Run lock acquired")
			return &Lock{path: path, file: file}, nil
		}
		if !os.IsExist(err) {
			return nil, errors.Wrapf(err, errors.ErrLock, "creating lock file %s", path)
		}
		if !waited {
			logger.Info().Str("path", path).Msg("Waiting for another blocksync run to finish")
			waited = true
		}
		if err := wait(ctx); err != nil {
			return nil, errors.Wrapf(err, errors.ErrLock, "waiting for lock %s", path)
		}
	}
}

// Release releases the lock and removes the lock file
func (l *Lock) Release() {
	if l == nil || l.file == nil {
		return
	}

	_ = l.file.Close()
	_ = os.Remove(l.path)
	l.file = nil
}
