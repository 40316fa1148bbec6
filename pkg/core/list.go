package core

import (
	"sort"

	"github.com/arthur-debert/blocksync/pkg/config"
	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/filesystem"
	"github.com/arthur-debert/blocksync/pkg/types"
)

// ListOptions contains options for listing blocks
type ListOptions struct {
	Config     *config.Config
	Roots      []string
	FileSystem types.FS
}

// RefSite is one ref block location
type RefSite struct {
	File string
	Line int
}

// TruthSummary describes one truth block and where it is referenced
type TruthSummary struct {
	Name  string
	File  string
	Line  int
	Lines int
	Refs  []RefSite
}

// Listing is the result of ListBlocks
type Listing struct {
	Truths []TruthSummary
	// Unresolved maps names referenced without a truth block to their sites
	Unresolved map[string][]RefSite
}

// ListBlocks parses the tree without modifying anything and summarizes every
// truth block. Unknown references are reported rather than treated as errors.
func ListBlocks(opts ListOptions) (*Listing, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is required")
	}
	roots := opts.Roots
	if len(roots) == 0 {
		roots = cfg.Roots
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	tree, err := parseTree(fs, cfg, roots)
	if err != nil {
		return nil, err
	}

	sites := make(map[string][]RefSite)
	for _, fb := range tree.blocks {
		for _, ref := range fb.Refs {
			sites[ref.Name] = append(sites[ref.Name], RefSite{File: fb.File.Path, Line: ref.BeginLine + 1})
		}
	}

	listing := &Listing{Unresolved: make(map[string][]RefSite)}
	for _, name := range tree.truths.Names() {
		truth, _ := tree.truths.Lookup(name)
		listing.Truths = append(listing.Truths, TruthSummary{
			Name:  truth.Name,
			File:  truth.File,
			Line:  truth.Line,
			Lines: len(truth.Lines),
			Refs:  sites[name],
		})
		delete(sites, name)
	}
	for name, refs := range sites {
		listing.Unresolved[name] = refs
	}

	return listing, nil
}

// UnresolvedNames returns the unresolved names in sorted order
func (l *Listing) UnresolvedNames() []string {
	names := make([]string, 0, len(l.Unresolved))
	for name := range l.Unresolved {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
