package domain

import (
	"fmt"
	"slices"

	"regmut.dev/pkg/regmut/internal/domain/mutagens"
	m "regmut.dev/pkg/regmut/internal/model"
)

// catalog is the fixed, ordered set of mutators. Registration order is the
// order mutants are reported in for a given tree position.
var catalog = buildCatalog(
	mutagens.Anchors(),
	mutagens.CharClasses(),
	mutagens.PredefinedClasses(),
	mutagens.Quantifiers(),
	mutagens.Alternations(),
	mutagens.Groups(),
	mutagens.Backreferences(),
)

func buildCatalog(families ...[]m.Mutator) []m.Mutator {
	seen := make(map[string]struct{})

	var all []m.Mutator

	for _, family := range families {
		for _, mutator := range family {
			if _, dup := seen[mutator.Name]; dup {
				panic(fmt.Sprintf("duplicate mutator name %q", mutator.Name))
			}

			if len(mutator.Levels) == 0 || mutator.Apply == nil {
				panic(fmt.Sprintf("mutator %q needs levels and an apply function", mutator.Name))
			}

			seen[mutator.Name] = struct{}{}
			mutator = mutator.Clone()
			mutator.Levels = normalizeLevels(mutator.Levels)
			all = append(all, mutator)
		}
	}

	return all
}

// Catalog returns copies of every mutator in registration order.
func Catalog() []m.Mutator {
	return cloneMutators(catalog)
}

// Lookup returns a copy of the mutator registered under name.
func Lookup(name string) (m.Mutator, bool) {
	for _, mutator := range catalog {
		if mutator.Name == name {
			return mutator.Clone(), true
		}
	}

	return m.Mutator{}, false
}

// CatalogLevels returns every level some mutator declares, ascending.
func CatalogLevels() []int {
	return levelsOf(catalog)
}

func levelsOf(mutators []m.Mutator) []int {
	var levels []int
	for _, mutator := range mutators {
		levels = append(levels, mutator.Levels...)
	}

	return normalizeLevels(levels)
}

func cloneMutators(mutators []m.Mutator) []m.Mutator {
	out := make([]m.Mutator, len(mutators))
	for i, mutator := range mutators {
		out[i] = mutator.Clone()
	}

	return out
}

// normalizeLevels sorts and deduplicates a copy of levels.
func normalizeLevels(levels []int) []int {
	out := slices.Clone(levels)
	slices.Sort(out)

	return slices.Compact(out)
}
