package registry

import (
	"sort"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/types"
)

// Truths maps block names to their canonical definitions
type Truths struct {
	items map[string]types.TruthBlock
}

// New creates an empty registry
func New() *Truths {
	return &Truths{
		items: make(map[string]types.TruthBlock),
	}
}

// Register adds a truth block. A name may only be registered once; the error
// for a second definition cites both locations.
func (r *Truths) Register(block types.TruthBlock) error {
	if block.Name == "" {
		return errors.New(errors.ErrInvalidInput, "truth block name cannot be empty")
	}

	if existing, exists := r.items[block.Name]; exists {
		first := errors.Location{File: existing.File, Line: existing.Line}
		second := errors.Location{File: block.File, Line: block.Line}
		return errors.At(second, errors.ErrDuplicateTruth,
			"truth block %q is already defined at %s", block.Name, first).
			WithDetail("first", first).
			WithDetail("second", second)
	}

	r.items[block.Name] = block
	return nil
}

// Lookup returns the truth block registered under name
func (r *Truths) Lookup(name string) (types.TruthBlock, bool) {
	block, ok := r.items[name]
	return block, ok
}

// Names returns all registered names in sorted order
func (r *Truths) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered truth blocks
func (r *Truths) Count() int {
	return len(r.items)
}
