// Package model defines the data structures shared by the mutation engine,
// its adapters and its front ends.
package model

import (
	"slices"

	"regmut.dev/pkg/regmut/internal/syntax"
)

// Candidate is one rewritten tree proposed by a mutator.
type Candidate struct {
	Root        syntax.Node
	Description string
}

// Mutator describes one mutation operator of the catalog.
type Mutator struct {
	Name        string
	Description string
	Levels      []int
	// Apply returns the candidates for the node under the cursor. It must not
	// modify the tree.
	Apply func(c *syntax.Cursor) []Candidate
}

// HasLevel reports whether the mutator belongs to level.
func (mt Mutator) HasLevel(level int) bool {
	return slices.Contains(mt.Levels, level)
}

// Clone returns a copy that shares no mutable state with mt.
func (mt Mutator) Clone() Mutator {
	mt.Levels = slices.Clone(mt.Levels)
	return mt
}
