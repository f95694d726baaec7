package mutagens

import (
	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// Quantifiers returns the operators for `*`, `+`, `?` and the brace forms.
// Every rewrite keeps the laziness of the quantifier it replaces.
func Quantifiers() []m.Mutator {
	return []m.Mutator{
		{
			Name:        "Quantifier removal",
			Description: "Remove a quantifier",
			Levels:      levelsOne,
			Apply:       removeQuantifier,
		},
		{
			Name:        "Quantifier `{n}` change",
			Description: "Change `{n}` to `{0,n}` and `{n,}`",
			Levels:      levelsTwoThree,
			Apply:       changeExact,
		},
		{
			Name:        "Quantifier `{n,}` modification",
			Description: "Change `{n,}` to `{n-1,}` and `{n+1,}`",
			Levels:      levelsTwoThree,
			Apply:       modifyAtLeast,
		},
		{
			Name:        "Quantifier `{n,}` change",
			Description: "Change `{n,}` to `{n}`",
			Levels:      levelsTwoThree,
			Apply:       changeAtLeast,
		},
		{
			Name:        "Quantifier `{n,m}` modification",
			Description: "Move one bound of `{n,m}` by one",
			Levels:      levelsTwoThree,
			Apply:       modifyBetween,
		},
		{
			Name:        "Short quantifier modification",
			Description: "Change `*`, `+` and `?` to an equivalent brace quantifier with one bound moved",
			Levels:      levelsTwoThree,
			Apply:       modifyShort,
		},
		{
			Name:        "Short quantifier change",
			Description: "Swap `*`, `+` and `?` for each other",
			Levels:      levelsTwoThree,
			Apply:       changeShort,
		},
		{
			Name:        "Quantifier reluctant addition",
			Description: "Make a greedy quantifier reluctant",
			Levels:      levelsThree,
			Apply:       addReluctant,
		},
		{
			Name:        "Quantifier reluctant removal",
			Description: "Make a reluctant quantifier greedy",
			Levels:      levelsThree,
			Apply:       removeReluctant,
		},
	}
}

// bounds is a quantifier shape without its operand.
type bounds struct {
	form     syntax.QuantifierForm
	min, max int
}

func quantifierAt(c *syntax.Cursor, forms ...syntax.QuantifierForm) (*syntax.Quantifier, bool) {
	q, ok := c.Node().(*syntax.Quantifier)
	if !ok {
		return nil, false
	}

	if len(forms) == 0 {
		return q, true
	}

	for _, form := range forms {
		if q.Form == form {
			return q, true
		}
	}

	return nil, false
}

// requantify builds one candidate per shape, keeping the operand and laziness.
func requantify(c *syntax.Cursor, q *syntax.Quantifier, shapes ...bounds) []m.Candidate {
	candidates := make([]m.Candidate, 0, len(shapes))

	for _, s := range shapes {
		candidates = append(candidates, withQuantifier(c, q, s, q.Lazy))
	}

	return candidates
}

func withQuantifier(c *syntax.Cursor, q *syntax.Quantifier, s bounds, lazy bool) m.Candidate {
	changed := &syntax.Quantifier{Expr: q.Expr, Min: s.min, Max: s.max, Lazy: lazy, Form: s.form, Loc: q.Loc}

	return m.Candidate{
		Root:        c.Replace(changed),
		Description: "Change the quantifier " + quote(q) + " to " + quote(changed),
	}
}

func removeQuantifier(c *syntax.Cursor) []m.Candidate {
	q, ok := quantifierAt(c)
	if !ok {
		return nil
	}

	operator := syntax.QuantifierText(q.Form, q.Min, q.Max)
	if q.Lazy {
		operator += "?"
	}

	return single(c.Replace(q.Expr), "Remove the quantifier `"+operator+"` from "+quote(q))
}

func changeExact(c *syntax.Cursor) []m.Candidate {
	q, ok := quantifierAt(c, syntax.Exact)
	if !ok {
		return nil
	}

	return requantify(c, q,
		bounds{form: syntax.Between, min: 0, max: q.Min},
		bounds{form: syntax.AtLeast, min: q.Min, max: syntax.Unbounded},
	)
}

func modifyAtLeast(c *syntax.Cursor) []m.Candidate {
	q, ok := quantifierAt(c, syntax.AtLeast)
	if !ok {
		return nil
	}

	var shapes []bounds
	if q.Min > 0 {
		shapes = append(shapes, bounds{form: syntax.AtLeast, min: q.Min - 1, max: syntax.Unbounded})
	}

	if q.Min < syntax.MaxRepeat {
		shapes = append(shapes, bounds{form: syntax.AtLeast, min: q.Min + 1, max: syntax.Unbounded})
	}

	return requantify(c, q, shapes...)
}

func changeAtLeast(c *syntax.Cursor) []m.Candidate {
	q, ok := quantifierAt(c, syntax.AtLeast)
	if !ok {
		return nil
	}

	return requantify(c, q, bounds{form: syntax.Exact, min: q.Min, max: q.Min})
}

func modifyBetween(c *syntax.Cursor) []m.Candidate {
	q, ok := quantifierAt(c, syntax.Between)
	if !ok {
		return nil
	}

	var shapes []bounds

	if q.Min > 0 {
		shapes = append(shapes, bounds{form: syntax.Between, min: q.Min - 1, max: q.Max})
	}

	if q.Min < q.Max {
		shapes = append(shapes,
			bounds{form: syntax.Between, min: q.Min + 1, max: q.Max},
			bounds{form: syntax.Between, min: q.Min, max: q.Max - 1},
		)
	}

	if q.Max < syntax.MaxRepeat {
		shapes = append(shapes, bounds{form: syntax.Between, min: q.Min, max: q.Max + 1})
	}

	return requantify(c, q, shapes...)
}

var shortModifications = map[syntax.QuantifierForm][]bounds{
	syntax.Star: {
		{form: syntax.AtLeast, min: 1, max: syntax.Unbounded},
	},
	syntax.Plus: {
		{form: syntax.AtLeast, min: 0, max: syntax.Unbounded},
		{form: syntax.AtLeast, min: 2, max: syntax.Unbounded},
	},
	syntax.Question: {
		{form: syntax.Between, min: 1, max: 1},
		{form: syntax.Between, min: 0, max: 2},
	},
}

func modifyShort(c *syntax.Cursor) []m.Candidate {
	q, ok := quantifierAt(c, syntax.Star, syntax.Plus, syntax.Question)
	if !ok {
		return nil
	}

	return requantify(c, q, shortModifications[q.Form]...)
}

var (
	star     = bounds{form: syntax.Star, min: 0, max: syntax.Unbounded}
	plus     = bounds{form: syntax.Plus, min: 1, max: syntax.Unbounded}
	question = bounds{form: syntax.Question, min: 0, max: 1}
)

var shortChanges = map[syntax.QuantifierForm][]bounds{
	syntax.Star:     {plus, question},
	syntax.Plus:     {star, question},
	syntax.Question: {star, plus},
}

func changeShort(c *syntax.Cursor) []m.Candidate {
	q, ok := quantifierAt(c, syntax.Star, syntax.Plus, syntax.Question)
	if !ok {
		return nil
	}

	return requantify(c, q, shortChanges[q.Form]...)
}

func addReluctant(c *syntax.Cursor) []m.Candidate {
	q, ok := quantifierAt(c)
	if !ok || q.Lazy {
		return nil
	}

	return []m.Candidate{withQuantifier(c, q, bounds{form: q.Form, min: q.Min, max: q.Max}, true)}
}

func removeReluctant(c *syntax.Cursor) []m.Candidate {
	q, ok := quantifierAt(c)
	if !ok || !q.Lazy {
		return nil
	}

	return []m.Candidate{withQuantifier(c, q, bounds{form: q.Form, min: q.Min, max: q.Max}, false)}
}
