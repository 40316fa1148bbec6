//go:build !windows

package lock

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/logging"
)

// Lock represents an exclusive lock held by this process
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

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLock, "opening lock file %s", path)
	}

	waited := false
	for {
		err = syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
		if err == nil {
			break
		}
		if err != syscall.EWOULDBLOCK {
			_ = file.Close()
			return nil, errors.Wrapf(err, errors.ErrLock, "locking %s", path)
		}
		if !waited {
			logger.Info().Str("path", path).Str("holder", holderPID(path)).Msg("Waiting for another blocksync run to finish")
			waited = true
		}
		if err := wait(ctx); err != nil {
			_ = file.Close()
			return nil, errors.Wrapf(err, errors.ErrLock, "waiting for lock %s", path)
		}
	}

	// Record our PID for diagnostics; failure here does not invalidate the lock
	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)
	}

	logger.Debug().Str("path", path).Msg("Run lock acquired")
	return &Lock{path: path, file: file}, nil
}

// Release releases the lock. The file stays on disk: unlinking it would let
// a waiter lock an inode that a newcomer can no longer see.
func (l *Lock) Release() {
	if l == nil || l.file == nil {
		return
	}

	_ = syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
	_ = l.file.Close()
	l.file = nil
}

func holderPID(path string) string {
	content, err := os.ReadFile(path)
	if err != nil || len(content) == 0 {
		return "unknown"
	}
	return string(content)
}
