package mutagens

import (
	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// Anchors returns the operators for `^`, `$`, `\b` and `\B`.
func Anchors() []m.Mutator {
	return []m.Mutator{
		{
			Name:        "Beginning of line character `^` removal",
			Description: "Remove beginning of line character `^`",
			Levels:      levelsAll,
			Apply:       removeAnchor(syntax.LineStart, "Remove beginning of line character `^`"),
		},
		{
			Name:        "End of line character `$` removal",
			Description: "Remove end of line character `$`",
			Levels:      levelsAll,
			Apply:       removeAnchor(syntax.LineEnd, "Remove end of line character `$`"),
		},
		{
			Name:        "Beginning of line character `^` to beginning of input `\\A`",
			Description: "Change beginning of line character `^` to beginning of input `\\A`",
			Levels:      levelsTwoThree,
			Apply: convertAnchor(syntax.LineStart, syntax.InputStart,
				"Change beginning of line character `^` to beginning of input `\\A`"),
		},
		{
			Name:        "End of line character `$` to end of input `\\z`",
			Description: "Change end of line character `$` to end of input `\\z`",
			Levels:      levelsTwoThree,
			Apply: convertAnchor(syntax.LineEnd, syntax.InputEnd,
				"Change end of line character `$` to end of input `\\z`"),
		},
		{
			Name:        "Word boundary removal",
			Description: "Remove word boundary `\\b` or non-word boundary `\\B`",
			Levels:      levelsAll,
			Apply:       removeWordBoundary,
		},
		{
			Name:        "Word boundary negation",
			Description: "Change word boundary `\\b` to `\\B` and `\\B` to `\\b`",
			Levels:      levelsOne,
			Apply:       negateWordBoundary,
		},
	}
}

func anchorAt(c *syntax.Cursor, kinds ...syntax.AnchorKind) (*syntax.Anchor, bool) {
	a, ok := c.Node().(*syntax.Anchor)
	if !ok {
		return nil, false
	}

	for _, kind := range kinds {
		if a.Kind == kind {
			return a, true
		}
	}

	return nil, false
}

func removeAnchor(kind syntax.AnchorKind, description string) func(c *syntax.Cursor) []m.Candidate {
	return func(c *syntax.Cursor) []m.Candidate {
		if _, ok := anchorAt(c, kind); !ok {
			return nil
		}

		return single(remove(c), description)
	}
}

func convertAnchor(from, to syntax.AnchorKind, description string) func(c *syntax.Cursor) []m.Candidate {
	return func(c *syntax.Cursor) []m.Candidate {
		a, ok := anchorAt(c, from)
		if !ok {
			return nil
		}

		return single(c.Replace(&syntax.Anchor{Kind: to, Loc: a.Loc}), description)
	}
}

func removeWordBoundary(c *syntax.Cursor) []m.Candidate {
	a, ok := anchorAt(c, syntax.WordBoundary, syntax.NonWordBoundary)
	if !ok {
		return nil
	}

	what := "word boundary"
	if a.Kind == syntax.NonWordBoundary {
		what = "non-word boundary"
	}

	return single(remove(c), "Remove "+what+" "+quote(a))
}

func negateWordBoundary(c *syntax.Cursor) []m.Candidate {
	a, ok := anchorAt(c, syntax.WordBoundary, syntax.NonWordBoundary)
	if !ok {
		return nil
	}

	negated := &syntax.Anchor{Kind: syntax.NonWordBoundary, Loc: a.Loc}
	if a.Kind == syntax.NonWordBoundary {
		negated.Kind = syntax.WordBoundary
	}

	return single(c.Replace(negated), "Change "+quote(a)+" to "+quote(negated))
}
