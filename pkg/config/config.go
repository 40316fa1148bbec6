package config

import (
	"time"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/markers"
)

// Config is the complete blocksync configuration
type Config struct {
	TabWidth   int      `koanf:"tab_width"`
	Extensions []string `koanf:"extensions"`
	Roots      []string `koanf:"roots"`
	Workers    int      `koanf:"workers"`
	Markers    Markers  `koanf:"markers"`
	Run        Run      `koanf:"run"`
}

// Markers holds the marker tokens
type Markers struct {
	Begin string `koanf:"begin"`
	End   string `koanf:"end"`
}

// Run holds the settings around a whole run
type Run struct {
	RecencyWindow time.Duration `koanf:"recency_window"`
	StampFile     string        `koanf:"stamp_file"`
	LockFile      string        `koanf:"lock_file"`
}

// Grammar returns the marker grammar for the configured tokens
func (c *Config) Grammar() markers.Grammar {
	return markers.NewGrammar(c.Markers.Begin, c.Markers.End)
}

// Validate checks the configuration for values the core cannot work with
func (c *Config) Validate() error {
	if c.TabWidth < 1 {
		return errors.Newf(errors.ErrConfigValid, "tab_width must be at least 1, got %d", c.TabWidth)
	}
	if c.Workers < 0 {
		return errors.Newf(errors.ErrConfigValid, "workers cannot be negative, got %d", c.Workers)
	}
	if len(c.Extensions) == 0 {
		return errors.New(errors.ErrConfigValid, "extensions cannot be empty")
	}
	if !markers.ValidToken(c.Markers.Begin) || !markers.ValidToken(c.Markers.End) {
		return errors.Newf(errors.ErrConfigValid, "invalid marker tokens %q / %q", c.Markers.Begin, c.Markers.End)
	}
	if c.Markers.Begin == c.Markers.End {
		return errors.Newf(errors.ErrConfigValid, "begin and end tokens must differ, both are %q", c.Markers.Begin)
	}
	if c.Run.RecencyWindow < 0 {
		return errors.Newf(errors.ErrConfigValid, "recency_window cannot be negative, got %s", c.Run.RecencyWindow)
	}
	return nil
}
