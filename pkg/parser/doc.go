// Package parser turns the lines of source files into truth and ref blocks.
//
// Parsing happens in two independent passes over every file:
//
//  1. The truth pass finds every opener qualified with source_of_truth,
//     captures its body (marker lines stripped, nested truth bodies kept),
//     registers it and recurses into the body so nested truth blocks are
//     registered under their own names as well. A truth block may only
//     contain other truth blocks.
//  2. The ref pass walks each file top to bottom, records every unqualified
//     opener as a RefBlock and rejects any opener inside a ref. Truth spans
//     are skipped as a whole.
//
// All files go through the truth pass before any file goes through the ref
// pass. Files are visited in the order given, so diagnostics such as a
// duplicate name are reproducible.
package parser
