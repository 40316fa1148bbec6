// Package config handles configuration management for blocksync.
// It supports loading configuration from multiple sources including
// TOML files, environment variables, and command-line flags.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the project file: an explicit --config path, otherwise .blocksync.toml
//     or blocksync.toml in the working directory
//  3. BLOCKSYNC_* environment variables; a double underscore separates
//     sections, e.g. BLOCKSYNC_RUN__RECENCY_WINDOW=10s
//  4. command-line overrides
package config
