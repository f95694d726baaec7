package mutagens

import (
	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// Groups returns the operators for capturing, non-capturing and lookaround
// groups.
func Groups() []m.Mutator {
	return []m.Mutator{
		{
			Name:        "Capturing group to non-capturing group",
			Description: "Change a capturing group to a non-capturing group",
			Levels:      levelsTwoThree,
			Apply:       toNonCapturing,
		},
		{
			Name:        "Non-capturing group to capturing group",
			Description: "Change a non-capturing group to a capturing group",
			Levels:      levelsThree,
			Apply:       toCapturing,
		},
		{
			Name:        "Lookaround negation",
			Description: "Negate a lookahead or lookbehind",
			Levels:      levelsAll,
			Apply:       negateLookaround,
		},
	}
}

func toNonCapturing(c *syntax.Cursor) []m.Candidate {
	g, ok := c.Node().(*syntax.Group)
	if !ok || !g.Kind.Captures() {
		return nil
	}

	if renumbersReferences(c.Root(), g.Index, g.Name) {
		return nil
	}

	changed := &syntax.Group{Expr: g.Expr, Kind: syntax.NonCapturing, Loc: g.Loc}

	return single(c.Replace(changed), "Change the capturing group "+quote(g)+" to "+quote(changed))
}

func toCapturing(c *syntax.Cursor) []m.Candidate {
	g, ok := c.Node().(*syntax.Group)
	if !ok || g.Kind != syntax.NonCapturing {
		return nil
	}

	index := captureIndex(c.Root(), g.Loc.Start.Offset)
	if renumbersReferences(c.Root(), index, "") {
		return nil
	}

	changed := &syntax.Group{
		Expr:  g.Expr,
		Kind:  syntax.Capturing,
		Index: index,
		Loc:   g.Loc,
	}

	return single(c.Replace(changed), "Change the non-capturing group "+quote(g)+" to "+quote(changed))
}

// captureIndex is the number a capturing group opening at offset would get.
func captureIndex(root syntax.Node, offset int) int {
	index := 1

	syntax.Walk(root, func(c *syntax.Cursor) bool {
		if g, ok := c.Node().(*syntax.Group); ok && g.Kind.Captures() && g.Loc.Start.Offset < offset {
			index++
		}

		return true
	})

	return index
}

// renumbersReferences reports whether adding or removing the capture group
// numbered index, named name, changes what some backreference in root points
// at. Numbered references at or after index shift; a named reference loses
// its target.
func renumbersReferences(root syntax.Node, index int, name string) bool {
	found := false

	syntax.Walk(root, func(c *syntax.Cursor) bool {
		if ref, ok := c.Node().(*syntax.Backreference); ok {
			if (ref.Name == "" && ref.Index >= index) || (name != "" && ref.Name == name) {
				found = true
			}
		}

		return !found
	})

	return found
}

var lookaroundNegations = map[syntax.GroupKind]syntax.GroupKind{
	syntax.Lookahead:          syntax.NegativeLookahead,
	syntax.NegativeLookahead:  syntax.Lookahead,
	syntax.Lookbehind:         syntax.NegativeLookbehind,
	syntax.NegativeLookbehind: syntax.Lookbehind,
}

func negateLookaround(c *syntax.Cursor) []m.Candidate {
	g, ok := c.Node().(*syntax.Group)
	if !ok || !g.Kind.Lookaround() {
		return nil
	}

	changed := &syntax.Group{Expr: g.Expr, Kind: lookaroundNegations[g.Kind], Loc: g.Loc}

	return single(c.Replace(changed), "Change "+quote(g)+" to "+quote(changed))
}
