package mutagens

import (
	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// Backreferences returns the operators for `\1` and `\k<name>`.
func Backreferences() []m.Mutator {
	return []m.Mutator{
		{
			Name:        "Backreference removal",
			Description: "Remove a backreference",
			Levels:      levelsThree,
			Apply:       removeBackreference,
		},
	}
}

// removeBackreference skips quantified references; removing the reference
// would leave the quantifier with nothing to repeat.
func removeBackreference(c *syntax.Cursor) []m.Candidate {
	ref, ok := c.Node().(*syntax.Backreference)
	if !ok {
		return nil
	}

	if _, quantified := c.Parent().(*syntax.Quantifier); quantified {
		return nil
	}

	return single(remove(c), "Remove the backreference "+quote(ref))
}
