package core

import (
	"context"
	"time"

	"github.com/arthur-debert/blocksync/pkg/config"
	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/filesystem"
	"github.com/arthur-debert/blocksync/pkg/lock"
	"github.com/arthur-debert/blocksync/pkg/logging"
	"github.com/arthur-debert/blocksync/pkg/paths"
	"github.com/arthur-debert/blocksync/pkg/reconcile"
	"github.com/arthur-debert/blocksync/pkg/scanner"
	"github.com/arthur-debert/blocksync/pkg/stamp"
	"github.com/arthur-debert/blocksync/pkg/types"
	"github.com/arthur-debert/blocksync/pkg/writer"
)

// SyncOptions contains options for a synchronization run
type SyncOptions struct {
	Config *config.Config
	// Roots overrides Config.Roots when not empty
	Roots  []string
	DryRun bool
	// Force ignores the recent-run stamp
	Force      bool
	FileSystem types.FS
	// Now defaults to time.Now
	Now func() time.Time
}

// FileUpdate lists the ref blocks rewritten in one file
type FileUpdate struct {
	Path   string
	Blocks []reconcile.Update
}

// SyncResult describes what a run did. It is returned alongside errors so
// callers can report partial progress.
type SyncResult struct {
	Roots      []string
	DryRun     bool
	Skipped    bool
	Candidates int
	Scanned    int
	Truths     int
	Refs       int
	Updated    []FileUpdate
	Conflicts  []types.Conflict
	Unreadable []scanner.Unreadable
}

// Synchronize runs the full pipeline under the run lock
func Synchronize(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	logger := logging.GetLogger("core.sync")

	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is required")
	}
	roots := opts.Roots
	if len(roots) == 0 {
		roots = cfg.Roots
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	result := &SyncResult{Roots: roots, DryRun: opts.DryRun}

	logger.Info().
		Strs("roots", roots).
		Bool("dryRun", opts.DryRun).
		Bool("force", opts.Force).
		Msg("Starting synchronization")

	lockPath := cfg.Run.LockFile
	if lockPath == "" {
		lockPath = paths.LockFilePath()
	}
	runLock, err := lock.Acquire(ctx, lockPath)
	if err != nil {
		return result, err
	}
	defer runLock.Release()

	stampPath := cfg.Run.StampFile
	if stampPath == "" {
		stampPath = paths.StampFilePath(roots)
	}
	if !opts.Force && !opts.DryRun && stamp.Fresh(fs, stampPath, cfg.Run.RecencyWindow, now()) {
		logger.Info().Str("stamp", stampPath).Msg("Previous run is recent, skipping")
		result.Skipped = true
		return result, nil
	}

	tree, err := parseTree(fs, cfg, roots)
	if tree != nil {
		result.Candidates = tree.candidates
		result.Scanned = len(tree.scan.Files)
		result.Unreadable = tree.scan.Unreadable
		result.Truths = tree.truths.Count()
		result.Refs = tree.refCount()
	}
	if err != nil {
		return result, err
	}

	reconciler := reconcile.New(tree.truths, cfg.TabWidth)
	out := writer.New(fs, opts.DryRun)

	for _, fb := range tree.blocks {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, errors.ErrInternal, "synchronization cancelled")
		}

		outcome, err := reconciler.File(fb.File, fb.Refs)
		if err != nil {
			return result, err
		}
		result.Conflicts = append(result.Conflicts, outcome.Conflicts...)

		if !outcome.Modified {
			continue
		}
		if err := out.Write(fb.File); err != nil {
			return result, err
		}
		result.Updated = append(result.Updated, FileUpdate{Path: fb.File.Path, Blocks: outcome.Updates})
	}

	logger.Info().
		Int("truths", result.Truths).
		Int("refs", result.Refs).
		Int("updatedFiles", len(result.Updated)).
		Int("conflicts", len(result.Conflicts)).
		Msg("Synchronization complete")

	if len(result.Conflicts) > 0 {
		return result, errors.Newf(errors.ErrConflict,
			"%d ref block(s) were edited after their source of truth; resolve them by hand", len(result.Conflicts)).
			WithDetail("conflicts", result.Conflicts)
	}

	if !opts.DryRun {
		if err := stamp.Touch(fs, stampPath, now()); err != nil {
			logger.Warn().Err(err).Str("stamp", stampPath).Msg("Failed to update run stamp")
		}
	}

	return result, nil
}
