package core

import (
	"github.com/arthur-debert/blocksync/pkg/config"
	"github.com/arthur-debert/blocksync/pkg/logging"
	"github.com/arthur-debert/blocksync/pkg/parser"
	"github.com/arthur-debert/blocksync/pkg/registry"
	"github.com/arthur-debert/blocksync/pkg/scanner"
	"github.com/arthur-debert/blocksync/pkg/types"
	"github.com/arthur-debert/blocksync/pkg/walker"
)

// parsed is the state shared by sync and list once parsing is done
type parsed struct {
	candidates int
	scan       scanner.Result
	truths     *registry.Truths
	blocks     []parser.FileBlocks
}

// parseTree walks, scans and parses the roots
func parseTree(fs types.FS, cfg *config.Config, roots []string) (*parsed, error) {
	logger := logging.GetLogger("core.parse")

	done := logging.LogOperationStart(logger, "walk")
	files, err := walker.New(fs, cfg.Extensions).Files(roots)
	done()
	if err != nil {
		return nil, err
	}

	done = logging.LogOperationStart(logger, "scan")
	scan := scanner.New(fs, cfg.Grammar(), cfg.Workers).Scan(files)
	done()

	result := &parsed{
		candidates: len(files),
		scan:       scan,
		truths:     registry.New(),
	}

	done = logging.LogOperationStart(logger, "parse")
	result.blocks, err = parser.New(cfg.Grammar(), cfg.TabWidth).Parse(scan.Files, result.truths)
	done()
	if err != nil {
		return result, err
	}

	return result, nil
}

func (p *parsed) refCount() int {
	n := 0
	for _, fb := range p.blocks {
		n += len(fb.Refs)
	}
	return n
}
