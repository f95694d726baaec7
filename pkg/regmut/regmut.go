// Package regmut generates mutants of regular expressions. A mutant is the
// pattern with one small syntactic change applied, such as a removed anchor,
// a negated character class or a different quantifier. Tests that still pass
// against a mutant point at input the pattern is never checked with.
//
// The package is safe for concurrent use.
package regmut

import (
	"regmut.dev/pkg/regmut/internal/domain"
	"regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

type (
	// Mutant is one mutated pattern together with the mutator that produced
	// it and the location of the change in the original pattern.
	Mutant = model.Mutant
	// Location is the inclusive range of the original pattern a mutant changed.
	Location = model.Location
	// Point is a zero-based line and column.
	Point = model.Point
	// SyntaxError carries the position of a parse failure.
	SyntaxError = syntax.Error
)

var (
	// ErrSyntax is matched by errors for patterns that do not parse.
	ErrSyntax = syntax.ErrSyntax
	// ErrInvalidOptions is matched by every option validation error.
	ErrInvalidOptions = domain.ErrInvalidOptions
	// ErrUnknownMutator reports a mutator that is not in the catalog.
	ErrUnknownMutator = domain.ErrUnknownMutator
	// ErrInvalidLevel reports a level that is not positive or unused.
	ErrInvalidLevel = domain.ErrInvalidLevel
)

// Mutator describes one entry of the mutator catalog.
type Mutator struct {
	Name        string
	Description string
	Levels      []int
}

var engine = domain.NewMutagen()

// Mutate returns every mutant of pattern produced by the selected mutators.
// Without options all mutators at all levels run.
func Mutate(pattern string, opts ...Option) ([]Mutant, error) {
	var o domain.Options
	for _, opt := range opts {
		opt(&o)
	}

	return engine.Mutate(pattern, o)
}

// Mutators returns the catalog in registration order.
func Mutators() []Mutator {
	catalog := domain.Catalog()

	out := make([]Mutator, 0, len(catalog))
	for _, mutator := range catalog {
		out = append(out, describe(mutator))
	}

	return out
}

// Lookup returns the catalog entry called name.
func Lookup(name string) (Mutator, bool) {
	mutator, ok := domain.Lookup(name)
	if !ok {
		return Mutator{}, false
	}

	return describe(mutator), true
}

// Levels returns every mutation level used by the catalog, ascending.
func Levels() []int {
	return domain.CatalogLevels()
}

func describe(mutator model.Mutator) Mutator {
	return Mutator{
		Name:        mutator.Name,
		Description: mutator.Description,
		Levels:      mutator.Levels,
	}
}
