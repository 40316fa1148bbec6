// Package lock serializes whole runs across processes.
//
// Two build steps may invoke blocksync on the same tree at the same time.
// Every run holds an exclusive lock on a well-known file from before the scan
// until after the last write, so runs never interleave.
package lock

import (
	"context"
	"time"
)

// PollInterval is how often a waiting process retries the lock
var PollInterval = 100 * time.Millisecond

// wait sleeps for one poll interval or until ctx is done
func wait(ctx context.Context) error {
	timer := time.NewTimer(PollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
