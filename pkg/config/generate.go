package config

import (
	"bytes"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# blocksync project configuration.
# Values below are the effective settings at generation time; delete any
# key to fall back to the built-in default.

`

type fileConfig struct {
	TabWidth   int         `toml:"tab_width"`
	Extensions []string    `toml:"extensions"`
	Roots      []string    `toml:"roots"`
	Workers    int         `toml:"workers"`
	Markers    fileMarkers `toml:"markers"`
	Run        fileRun     `toml:"run"`
}

type fileMarkers struct {
	Begin string `toml:"begin"`
	End   string `toml:"end"`
}

type fileRun struct {
	RecencyWindow string `toml:"recency_window"`
	StampFile     string `toml:"stamp_file"`
	LockFile      string `toml:"lock_file"`
}

// GenerateConfigContent renders cfg as a project config file that Load reads
// back to the same values
func GenerateConfigContent(cfg *Config) (string, error) {
	fc := fileConfig{
		TabWidth:   cfg.TabWidth,
		Extensions: cfg.Extensions,
		Roots:      cfg.Roots,
		Workers:    cfg.Workers,
		Markers:    fileMarkers{Begin: cfg.Markers.Begin, End: cfg.Markers.End},
		Run: fileRun{
			RecencyWindow: cfg.Run.RecencyWindow.String(),
			StampFile:     cfg.Run.StampFile,
			LockFile:      cfg.Run.LockFile,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(fc); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}
