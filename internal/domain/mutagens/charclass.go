package mutagens

import (
	"unicode/utf8"

	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

// CharClasses returns the operators for bracket expressions and their ranges.
func CharClasses() []m.Mutator {
	return []m.Mutator{
		{
			Name:        "Character class negation",
			Description: "Negate a character class",
			Levels:      levelsOne,
			Apply:       negateClass,
		},
		{
			Name:        "Character class child removal",
			Description: "Remove a child from a character class",
			Levels:      levelsTwoThree,
			Apply:       removeClassChild,
		},
		{
			Name:        "Character class to character class `[\\w\\W]`",
			Description: "Change a character class to `[\\w\\W]`",
			Levels:      levelsTwoThree,
			Apply:       classToAnyChar,
		},
		{
			Name:        "Character class range modification",
			Description: "Move one bound of a character class range by one character",
			Levels:      levelsThree,
			Apply:       modifyClassRange,
		},
	}
}

func negateClass(c *syntax.Cursor) []m.Candidate {
	class, ok := c.Node().(*syntax.CharClass)
	if !ok {
		return nil
	}

	negated := &syntax.CharClass{Negated: !class.Negated, Members: class.Members, Loc: class.Loc}

	return single(c.Replace(negated), "Change "+quote(class)+" to "+quote(negated))
}

// removeClassChild applies to the member itself so each removal carries the
// member's location.
func removeClassChild(c *syntax.Cursor) []m.Candidate {
	class, ok := c.Parent().(*syntax.CharClass)
	if !ok || len(class.Members) < 2 {
		return nil
	}

	return single(c.Delete(), "Remove the child "+quote(c.Node())+" from the character class "+quote(class))
}

// anyChar is `[\w\W]`.
func anyChar() *syntax.CharClass {
	return &syntax.CharClass{Members: []syntax.Node{
		&syntax.PredefinedClass{Class: 'w'},
		&syntax.PredefinedClass{Class: 'W'},
	}}
}

func classToAnyChar(c *syntax.Cursor) []m.Candidate {
	class, ok := c.Node().(*syntax.CharClass)
	if !ok {
		return nil
	}

	replacement := anyChar()
	replacement.Loc = class.Loc

	return single(c.Replace(replacement), "Change "+quote(class)+" to "+quote(replacement))
}

func modifyClassRange(c *syntax.Cursor) []m.Candidate {
	r, ok := c.Node().(*syntax.ClassRange)
	if !ok {
		return nil
	}

	from, to := r.From.Char, r.To.Char
	bounds := [][2]rune{
		{from - 1, to},
		{from + 1, to},
		{from, to - 1},
		{from, to + 1},
	}

	var candidates []m.Candidate

	for _, b := range bounds {
		if !utf8.ValidRune(b[0]) || !utf8.ValidRune(b[1]) || b[0] > b[1] {
			continue
		}

		modified := &syntax.ClassRange{
			From: boundLiteral(r.From, b[0]),
			To:   boundLiteral(r.To, b[1]),
			Loc:  r.Loc,
		}

		candidates = append(candidates, m.Candidate{
			Root:        c.Replace(modified),
			Description: "Change the character class range " + quote(r) + " to " + quote(modified),
		})
	}

	return candidates
}

// boundLiteral keeps the original endpoint when its character is unchanged.
func boundLiteral(original *syntax.Literal, ch rune) *syntax.Literal {
	if original.Char == ch {
		return original
	}

	return &syntax.Literal{Char: ch, Loc: original.Loc}
}
