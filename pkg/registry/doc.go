// Package registry holds the truth blocks discovered during a run.
//
// A Truths registry is created by the run, filled once by the parser's truth
// pass and only read afterwards by the reconciler. Those phases never overlap
// and never run on more than one goroutine, so the registry has no locking.
package registry
