// Package core implements the blocksync run: the pipeline from file
// discovery through to rewritten ref blocks.
//
// # Pipeline
//
// A synchronization run executes these phases strictly in order:
//
//  1. Walk: enumerate candidate files under the roots (pkg/walker)
//  2. Scan: read them in parallel, keep those containing the begin token
//     (pkg/scanner)
//  3. Parse: truth pass over every file, then ref pass over every file
//     (pkg/parser, pkg/registry)
//  4. Reconcile and write: file by file, rebuild ref bodies and persist a
//     modified file before moving on to the next (pkg/reconcile, pkg/writer)
//
// Only the scan is concurrent. The whole pipeline runs while holding the
// system-wide run lock (pkg/lock), and a successful run touches the
// recent-run stamp (pkg/stamp) so that a repeat invocation within the
// recency window returns immediately.
//
// # Failure Semantics
//
// Structural errors stop the run at once. Because each file is written as
// soon as it is reconciled, files finished before the error stay written.
// Conflicts do not stop the run: they are collected, every other block is
// still updated, and the run reports failure at the end.
package core
