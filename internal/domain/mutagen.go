// Package domain contains the mutation driver, the mutator catalog and the
// batch workflow built on them.
package domain

import (
	"log/slog"

	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// Mutagen turns a pattern into its mutants.
type Mutagen interface {
	Mutate(pattern string, opts Options) ([]m.Mutant, error)
	Catalog() []m.Mutator
}

// mutagen is stateless apart from its read-only catalog and is safe for
// concurrent use.
type mutagen struct {
	catalog []m.Mutator
}

// NewMutagen creates a Mutagen over the built-in catalog.
func NewMutagen() Mutagen {
	return &mutagen{catalog: catalog}
}

func (mg *mutagen) Catalog() []m.Mutator {
	return cloneMutators(mg.catalog)
}

// Mutate validates opts, parses pattern and applies every eligible mutator at
// every node. Mutants are ordered by node (pre-order), then by catalog order,
// then by the order the mutator proposed them in.
func (mg *mutagen) Mutate(pattern string, opts Options) ([]m.Mutant, error) {
	eligible, err := Select(mg.catalog, opts)
	if err != nil {
		return nil, err
	}

	tree, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	records := make([]record, 0)

	syntax.Walk(tree, func(c *syntax.Cursor) bool {
		for _, mutator := range eligible {
			for _, candidate := range mutator.Apply(c) {
				if rec, ok := accept(pattern, mutator, c.Node(), candidate); ok {
					records = append(records, rec)
				}
			}
		}

		return true
	})

	slog.Debug("Generated mutants", "pattern", pattern, "mutators", len(eligible), "mutants", len(records))

	return assemble(records), nil
}

// accept renders a candidate and keeps it only when it differs from the input
// and parses again.
func accept(pattern string, mutator m.Mutator, target syntax.Node, candidate m.Candidate) (record, bool) {
	text := syntax.Render(candidate.Root)
	if text == pattern {
		slog.Debug("Dropping candidate identical to its pattern", "mutator", mutator.Name, "pattern", pattern)
		return record{}, false
	}

	if _, err := syntax.Parse(text); err != nil {
		slog.Warn("Dropping candidate that does not parse",
			"mutator", mutator.Name,
			"pattern", pattern,
			"candidate", text,
			"error", err,
		)

		return record{}, false
	}

	description := candidate.Description
	if description == "" {
		description = mutator.Description
	}

	return record{
		pattern:     text,
		mutator:     mutator,
		description: description,
		span:        target.Span(),
	}, true
}
