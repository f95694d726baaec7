package mutagens

import (
	"unicode"

	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// PredefinedClasses returns the operators for `\d \D \w \W \s \S` and
// `\p{..}`.
func PredefinedClasses() []m.Mutator {
	return []m.Mutator{
		{
			Name:        "Predefined character class negation",
			Description: "Negate a predefined character class",
			Levels:      levelsOne,
			Apply:       negatePredefined,
		},
		{
			Name:        "Predefined character class nullification",
			Description: "Remove the backslash from a predefined character class",
			Levels:      levelsTwoThree,
			Apply:       nullifyPredefined,
		},
		{
			Name:        "Predefined character class to character class with its negation",
			Description: "Change a predefined character class to a character class holding it and its negation",
			Levels:      levelsTwoThree,
			Apply:       predefinedToClass,
		},
		{
			Name:        "Unicode character class negation",
			Description: "Negate a unicode property class",
			Levels:      levelsOne,
			Apply:       negateUnicode,
		},
	}
}

func flipCase(r rune) rune {
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}

	return unicode.ToUpper(r)
}

func negatePredefined(c *syntax.Cursor) []m.Candidate {
	p, ok := c.Node().(*syntax.PredefinedClass)
	if !ok {
		return nil
	}

	negated := &syntax.PredefinedClass{Class: flipCase(p.Class), Loc: p.Loc}

	return single(c.Replace(negated), "Change "+quote(p)+" to "+quote(negated))
}

func nullifyPredefined(c *syntax.Cursor) []m.Candidate {
	p, ok := c.Node().(*syntax.PredefinedClass)
	if !ok {
		return nil
	}

	letter := &syntax.Literal{Char: p.Class, Loc: p.Loc}

	return single(c.Replace(letter), "Change "+quote(p)+" to "+quote(letter))
}

// predefinedToClass only applies outside bracket expressions, where the
// replacement class cannot nest.
func predefinedToClass(c *syntax.Cursor) []m.Candidate {
	p, ok := c.Node().(*syntax.PredefinedClass)
	if !ok || c.InClass() {
		return nil
	}

	class := &syntax.CharClass{
		Members: []syntax.Node{
			&syntax.PredefinedClass{Class: p.Class},
			&syntax.PredefinedClass{Class: flipCase(p.Class)},
		},
		Loc: p.Loc,
	}

	return single(c.Replace(class), "Change "+quote(p)+" to "+quote(class))
}

func negateUnicode(c *syntax.Cursor) []m.Candidate {
	u, ok := c.Node().(*syntax.UnicodeClass)
	if !ok {
		return nil
	}

	negated := &syntax.UnicodeClass{Property: u.Property, Negated: !u.Negated, Loc: u.Loc}

	return single(c.Replace(negated), "Change "+quote(u)+" to "+quote(negated))
}
