package domain

import (
	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// record is an accepted candidate before it is turned into a Mutant.
type record struct {
	pattern     string
	mutator     m.Mutator
	description string
	span        syntax.Span
}

func assemble(records []record) []m.Mutant {
	mutants := make([]m.Mutant, 0, len(records))

	for _, rec := range records {
		mutants = append(mutants, m.Mutant{
			Pattern:        rec.pattern,
			Name:           rec.mutator.Name,
			Description:    rec.description,
			Location:       toLocation(rec.span),
			MutationLevels: normalizeLevels(rec.mutator.Levels),
		})
	}

	return mutants
}

func toLocation(span syntax.Span) m.Location {
	return m.Location{
		Start: m.Point{Line: span.Start.Line, Column: span.Start.Column},
		End:   m.Point{Line: span.End.Line, Column: span.End.Column},
	}
}
