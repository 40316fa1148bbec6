// Package types defines the block model shared by the parser, the
// reconciler and the run pipeline, plus the FS abstraction they read and
// write through.
package types
