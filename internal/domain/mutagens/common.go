// Package mutagens holds the regex mutation operators, one file per family.
package mutagens

import (
	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// Level sets shared by the operators.
var (
	levelsAll      = []int{1, 2, 3}
	levelsOne      = []int{1}
	levelsTwoThree = []int{2, 3}
	levelsThree    = []int{3}
)

func single(root syntax.Node, description string) []m.Candidate {
	return []m.Candidate{{Root: root, Description: description}}
}

// remove deletes the node under c. A node that forms a whole alternation
// branch leaves an empty branch behind so the other branches stay intact.
func remove(c *syntax.Cursor) syntax.Node {
	if _, ok := c.Parent().(*syntax.Alternation); ok {
		loc := c.Node().Span()
		return c.Replace(&syntax.Concat{Loc: syntax.Span{Start: loc.Start, End: loc.Start}})
	}

	return c.Delete()
}

// quote renders n between backticks for use in descriptions.
func quote(n syntax.Node) string {
	return "`" + syntax.Render(n) + "`"
}
