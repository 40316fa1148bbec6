// Package filesystem provides filesystem implementations for blocksync.
//
// This package contains implementations of the types.FS interface backed by
// afero: the real OS filesystem for normal runs and any afero.Fs (typically
// an in-memory MemMapFs) for tests.
package filesystem
