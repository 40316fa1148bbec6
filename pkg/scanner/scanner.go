// Package scanner reads candidate files in parallel and keeps the ones that
// may contain block markers.
package scanner

import (
	"runtime"
	"strings"
	"time"

	"github.com/arthur-debert/blocksync/pkg/logging"
	"github.com/arthur-debert/blocksync/pkg/markers"
	"github.com/arthur-debert/blocksync/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Unreadable is a candidate file that could not be read. It is treated as if
// it contained no markers.
type Unreadable struct {
	Path string
	Err  error
}

// Result is the output of a scan
type Result struct {
	// Files holds every file containing the begin token, in input order
	Files []*types.SourceFile
	// Unreadable lists soft-skipped files, in input order
	Unreadable []Unreadable
}

// Scanner performs the bulk read and marker pre-filter
type Scanner struct {
	fs      types.FS
	grammar markers.Grammar
	workers int
	logger  zerolog.Logger
}

// New creates a scanner. workers <= 0 uses one worker per CPU.
func New(fs types.FS, grammar markers.Grammar, workers int) *Scanner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scanner{
		fs:      fs,
		grammar: grammar,
		workers: workers,
		logger:  logging.GetLogger("scanner"),
	}
}

// slot is written by exactly one worker
type slot struct {
	data    []byte
	modTime time.Time
	err     error
}

// Scan reads all paths and returns the files that contain markers
func (s *Scanner) Scan(paths []string) Result {
	slots := make([]slot, len(paths))

	workers := s.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	if workers > 0 {
		chunk := (len(paths) + workers - 1) / workers
		var g errgroup.Group
		for lo := 0; lo < len(paths); lo += chunk {
			hi := lo + chunk
			if hi > len(paths) {
				hi = len(paths)
			}
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					slots[i] = s.read(paths[i])
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	var result Result
	for i := range slots {
		if slots[i].err != nil {
			s.logger.Warn().Err(slots[i].err).Str("file", paths[i]).Msg("Skipping unreadable file")
			result.Unreadable = append(result.Unreadable, Unreadable{Path: paths[i], Err: slots[i].err})
			continue
		}
		if slots[i].data == nil {
			continue
		}
		result.Files = append(result.Files, &types.SourceFile{
			Path:    paths[i],
			Lines:   SplitLines(slots[i].data),
			ModTime: slots[i].modTime,
		})
		slots[i].data = nil
	}

	s.logger.Debug().
		Int("candidates", len(paths)).
		Int("withMarkers", len(result.Files)).
		Int("unreadable", len(result.Unreadable)).
		Int("workers", workers).
		Msg("Scan complete")

	return result
}

func (s *Scanner) read(path string) slot {
	info, err := s.fs.Stat(path)
	if err != nil {
		return slot{err: err}
	}
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return slot{err: err}
	}
	if !s.grammar.MayContainMarkers(data) {
		return slot{}
	}
	return slot{data: data, modTime: info.ModTime()}
}

// SplitLines splits data on \n and strips one trailing \r from each line.
// A trailing newline yields a final empty line, so joining the result with
// \n reproduces LF-terminated input exactly.
func SplitLines(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
