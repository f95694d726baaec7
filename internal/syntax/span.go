package syntax

import "fmt"

// Position is a zero-based location inside a pattern. Line and Column count
// runes; Offset is the rune index from the start of the pattern.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers the characters of a node. End is the position of the last
// character (inclusive). An empty node has End == Start and is anchored at the
// character preceding it, or at the pattern start.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether s fully covers other.
func (s Span) Contains(other Span) bool {
	return s.Start.Offset <= other.Start.Offset && other.End.Offset <= s.End.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
