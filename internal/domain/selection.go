package domain

import (
	"errors"
	"fmt"
	"slices"

	m "regmut.dev/pkg/regmut/internal/model"
)

var (
	// ErrInvalidOptions is wrapped by every option validation error.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrUnknownMutator reports a mutator name the catalog does not hold.
	ErrUnknownMutator = fmt.Errorf("%w: unknown mutator", ErrInvalidOptions)
	// ErrInvalidLevel reports a level that is not positive or that no mutator
	// declares.
	ErrInvalidLevel = fmt.Errorf("%w: invalid mutation level", ErrInvalidOptions)
)

// Options restricts which mutators run. A nil slice selects everything; a
// non-nil empty slice selects nothing.
type Options struct {
	Mutators []string
	Levels   []int
}

// Select returns the mutators of catalog that are named in opts.Mutators and
// share a level with opts.Levels, in catalog order.
func Select(catalog []m.Mutator, opts Options) ([]m.Mutator, error) {
	if err := validateLevels(catalog, opts.Levels); err != nil {
		return nil, err
	}

	if err := validateNames(catalog, opts.Mutators); err != nil {
		return nil, err
	}

	selected := make([]m.Mutator, 0, len(catalog))

	for _, mutator := range catalog {
		if opts.Mutators != nil && !slices.Contains(opts.Mutators, mutator.Name) {
			continue
		}

		if opts.Levels != nil && !slices.ContainsFunc(opts.Levels, mutator.HasLevel) {
			continue
		}

		selected = append(selected, mutator)
	}

	return selected, nil
}

func validateLevels(catalog []m.Mutator, levels []int) error {
	known := levelsOf(catalog)

	for _, level := range levels {
		if level < 1 {
			return fmt.Errorf("%w %d: levels start at 1", ErrInvalidLevel, level)
		}

		if !slices.Contains(known, level) {
			return fmt.Errorf("%w %d: known levels are %v", ErrInvalidLevel, level, known)
		}
	}

	return nil
}

func validateNames(catalog []m.Mutator, names []string) error {
	for _, name := range names {
		if !slices.ContainsFunc(catalog, func(mutator m.Mutator) bool { return mutator.Name == name }) {
			return fmt.Errorf("%w %q", ErrUnknownMutator, name)
		}
	}

	return nil
}
