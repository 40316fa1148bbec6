// Package testutil provides utilities for testing blocksync components.
//
// Key components:
//   - Tree: an in-memory source tree (afero MemMapFs) with helpers to seed
//     files, pin their modification times and read them back
//
// Usage guidelines:
//   - Prefer Tree over the real filesystem; only filesystem, lock and cmd
//     tests touch disk, and those use t.TempDir()
//   - All test data should be defined inline, not in external files
package testutil
