// Package syntax parses regular expression patterns into an immutable tree
// with source spans, renders trees back to pattern text and provides the
// cursor used to build rewritten copies of a tree.
package syntax

// Node is a parsed regex construct. The set of implementations is closed;
// callers dispatch with a type switch.
type Node interface {
	Span() Span
	node()
}

// AnchorKind identifies a zero-width assertion.
type AnchorKind int

const (
	// LineStart is `^`.
	LineStart AnchorKind = iota
	// LineEnd is `$`.
	LineEnd
	// WordBoundary is `\b`.
	WordBoundary
	// NonWordBoundary is `\B`.
	NonWordBoundary
	// InputStart is `\A`.
	InputStart
	// InputEnd is `\z`.
	InputEnd
	// InputEndNewline is `\Z`.
	InputEndNewline
)

var anchorText = map[AnchorKind]string{
	LineStart:       "^",
	LineEnd:         "$",
	WordBoundary:    `\b`,
	NonWordBoundary: `\B`,
	InputStart:      `\A`,
	InputEnd:        `\z`,
	InputEndNewline: `\Z`,
}

func (k AnchorKind) String() string {
	return anchorText[k]
}

// Anchor is a zero-width assertion such as `^` or `\b`.
type Anchor struct {
	Kind AnchorKind
	Loc  Span
}

// Literal is a single character. Raw holds the source text when the
// character was written as an escape sequence (`\n`, `\x41`, `\.`); it is
// empty for plain characters and for literals built by mutators.
type Literal struct {
	Char rune
	Raw  string
	Loc  Span
}

// Dot is the any-character `.`.
type Dot struct {
	Loc Span
}

// PredefinedClass is one of `\d \D \w \W \s \S`. Class holds the letter.
type PredefinedClass struct {
	Class rune
	Loc   Span
}

// Negated reports whether the class is the upper-case form.
func (p *PredefinedClass) Negated() bool {
	return p.Class == 'D' || p.Class == 'W' || p.Class == 'S'
}

// UnicodeClass is `\p{Property}` or `\P{Property}`.
type UnicodeClass struct {
	Property string
	Negated  bool
	Loc      Span
}

// ClassRange is `From-To` inside a character class.
type ClassRange struct {
	From *Literal
	To   *Literal
	Loc  Span
}

// CharClass is a bracket expression.
type CharClass struct {
	Negated bool
	Members []Node
	Loc     Span
}

// QuantifierForm is the surface syntax a quantifier was written with.
type QuantifierForm int

const (
	// Star is `*`.
	Star QuantifierForm = iota
	// Plus is `+`.
	Plus
	// Question is `?`.
	Question
	// Exact is `{n}`.
	Exact
	// AtLeast is `{n,}`.
	AtLeast
	// Between is `{n,m}`.
	Between
)

// Unbounded is the Max of a quantifier without an upper bound.
const Unbounded = -1

// Quantifier repeats Expr between Min and Max times.
type Quantifier struct {
	Expr Node
	Min  int
	Max  int
	Lazy bool
	Form QuantifierForm
	Loc  Span
}

// GroupKind identifies the flavor of a parenthesized expression.
type GroupKind int

const (
	// Capturing is `(x)`.
	Capturing GroupKind = iota
	// NonCapturing is `(?:x)`.
	NonCapturing
	// Named is `(?<name>x)`.
	Named
	// Lookahead is `(?=x)`.
	Lookahead
	// NegativeLookahead is `(?!x)`.
	NegativeLookahead
	// Lookbehind is `(?<=x)`.
	Lookbehind
	// NegativeLookbehind is `(?<!x)`.
	NegativeLookbehind
)

// Captures reports whether groups of this kind record a submatch.
func (k GroupKind) Captures() bool {
	return k == Capturing || k == Named
}

// Lookaround reports whether the kind is a zero-width lookaround.
func (k GroupKind) Lookaround() bool {
	return k == Lookahead || k == NegativeLookahead || k == Lookbehind || k == NegativeLookbehind
}

// Group is a parenthesized expression. Index is the 1-based capture number
// for capturing kinds and 0 otherwise.
type Group struct {
	Expr  Node
	Kind  GroupKind
	Name  string
	Index int
	Loc   Span
}

// Alternation holds two or more branches separated by `|`.
type Alternation struct {
	Branches []Node
	Loc      Span
}

// Concat is a sequence of nodes. It may be empty.
type Concat struct {
	Items []Node
	Loc   Span
}

// Backreference refers to an earlier group by Index (`\1`) or Name (`\k<name>`).
type Backreference struct {
	Index int
	Name  string
	Loc   Span
}

func (n *Anchor) Span() Span          { return n.Loc }
func (n *Literal) Span() Span         { return n.Loc }
func (n *Dot) Span() Span             { return n.Loc }
func (n *PredefinedClass) Span() Span { return n.Loc }
func (n *UnicodeClass) Span() Span    { return n.Loc }
func (n *ClassRange) Span() Span      { return n.Loc }
func (n *CharClass) Span() Span       { return n.Loc }
func (n *Quantifier) Span() Span      { return n.Loc }
func (n *Group) Span() Span           { return n.Loc }
func (n *Alternation) Span() Span     { return n.Loc }
func (n *Concat) Span() Span          { return n.Loc }
func (n *Backreference) Span() Span   { return n.Loc }

func (*Anchor) node()          {}
func (*Literal) node()         {}
func (*Dot) node()             {}
func (*PredefinedClass) node() {}
func (*UnicodeClass) node()    {}
func (*ClassRange) node()      {}
func (*CharClass) node()       {}
func (*Quantifier) node()      {}
func (*Group) node()           {}
func (*Alternation) node()     {}
func (*Concat) node()          {}
func (*Backreference) node()   {}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *CharClass:
		return n.Members
	case *ClassRange:
		return []Node{n.From, n.To}
	case *Quantifier:
		return []Node{n.Expr}
	case *Group:
		return []Node{n.Expr}
	case *Alternation:
		return n.Branches
	case *Concat:
		return n.Items
	default:
		return nil
	}
}
