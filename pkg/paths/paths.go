package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/blocksync/pkg/internal/hashutil"
)

// Environment variable names
const (
	// EnvStateDir overrides the XDG state directory for blocksync
	EnvStateDir = "BLOCKSYNC_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for blocksync-specific files
	AppDirName = "blocksync"

	// LogFileName is the name of the log file
	LogFileName = "blocksync.log"

	// LockFileName is the name of the system-wide run lock
	LockFileName = "run.lock"

	// StampsDir is the subdirectory holding recent-run stamps
	StampsDir = "stamps"
)

// StateDir returns the blocksync state directory
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// LockFilePath returns the path of the run lock shared by every invocation
func LockFilePath() string {
	return filepath.Join(StateDir(), LockFileName)
}

// StampFilePath returns the recent-run stamp for a set of roots. Root order
// and relative spelling do not change the result.
func StampFilePath(roots []string) string {
	abs := make([]string, 0, len(roots))
	for _, root := range roots {
		if a, err := filepath.Abs(root); err == nil {
			root = a
		}
		abs = append(abs, filepath.Clean(root))
	}
	sort.Strings(abs)

	digest := hashutil.StringsDigest(abs)
	return filepath.Join(StateDir(), StampsDir, digest[:16]+".stamp")
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
