package mutagens

import (
	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// Alternations returns the operators for `a|b`.
func Alternations() []m.Mutator {
	return []m.Mutator{
		{
			Name:        "Alternation branch removal",
			Description: "Remove one branch of an alternation",
			Levels:      levelsAll,
			Apply:       removeBranch,
		},
	}
}

// removeBranch yields one candidate per branch, in branch order.
func removeBranch(c *syntax.Cursor) []m.Candidate {
	alt, ok := c.Node().(*syntax.Alternation)
	if !ok {
		return nil
	}

	candidates := make([]m.Candidate, 0, len(alt.Branches))

	for i, branch := range alt.Branches {
		rest := make([]syntax.Node, 0, len(alt.Branches)-1)
		rest = append(rest, alt.Branches[:i]...)
		rest = append(rest, alt.Branches[i+1:]...)

		var replacement syntax.Node = &syntax.Alternation{Branches: rest, Loc: alt.Loc}
		if len(rest) == 1 {
			replacement = rest[0]
		}

		candidates = append(candidates, m.Candidate{
			Root:        c.Replace(replacement),
			Description: "Remove the branch " + quote(branch) + " from the alternation " + quote(alt),
		})
	}

	return candidates
}
