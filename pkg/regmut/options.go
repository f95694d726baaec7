package regmut

import (
	"regmut.dev/pkg/regmut/internal/domain"
)

// Option restricts the mutators Mutate runs.
type Option func(*domain.Options)

// WithMutators runs only the given catalog entries. Repeated options add to
// the selection; calling it without arguments selects no mutator at all.
func WithMutators(mutators ...Mutator) Option {
	names := make([]string, 0, len(mutators))
	for _, mutator := range mutators {
		names = append(names, mutator.Name)
	}

	return WithMutatorNames(names...)
}

// WithMutatorNames is WithMutators by name.
func WithMutatorNames(names ...string) Option {
	return func(o *domain.Options) {
		if o.Mutators == nil {
			o.Mutators = []string{}
		}

		o.Mutators = append(o.Mutators, names...)
	}
}

// WithMutationLevels runs only mutators that belong to one of levels.
// Repeated options add to the selection; calling it without arguments
// selects no mutator at all.
func WithMutationLevels(levels ...int) Option {
	return func(o *domain.Options) {
		if o.Levels == nil {
			o.Levels = []int{}
		}

		o.Levels = append(o.Levels, levels...)
	}
}
