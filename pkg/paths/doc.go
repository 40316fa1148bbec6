// Package paths provides centralized path handling for blocksync.
//
// blocksync keeps a small amount of per-user state outside the synchronized
// tree: the log file, the run lock and the recent-run stamps. All of them
// live under the XDG state directory:
//
//   - Log:   $XDG_STATE_HOME/blocksync/blocksync.log
//   - Lock:  $XDG_STATE_HOME/blocksync/run.lock
//   - Stamp: $XDG_STATE_HOME/blocksync/stamps/<roots digest>.stamp
//
// # Environment Variables
//
//   - BLOCKSYNC_STATE_DIR: Override the state directory entirely
package paths
