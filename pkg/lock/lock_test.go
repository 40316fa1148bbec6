package lock

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "run.lock")

	l, err := Acquire(context.Background(), path)
	require.NoError(t, err)
	l.Release()

	// Released locks can be taken again
	l, err = Acquire(context.Background(), path)
	require.NoError(t, err)
	l.Release()

	// Releasing twice is harmless
	l.Release()
}

func TestAcquireWaitsForHolder(t *testing.T) {
	PollInterval = 10 * time.Millisecond
	path := filepath.Join(t.TempDir(), "run.lock")

	held, err := Acquire(context.Background(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = Acquire(ctx, path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLock))

	acquired := make(chan *Lock)
	go func() {
		l, err := Acquire(context.Background(), path)
		if err == nil {
			acquired <- l
		}
		close(acquired)
	}()

	time.Sleep(30 * time.Millisecond)
	held.Release()

	select {
	case l, ok := <-acquired:
		require.True(t, ok)
		l.Release()
	case <-time.After(5 * time.Second):
		t.Fatal("waiter never acquired the lock")
	}
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	assert.NotPanics(t, l.Release)
}
