package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxRepeat bounds the numbers accepted inside `{n,m}`.
const MaxRepeat = 1 << 16

type parser struct {
	pattern    []rune
	points     []Position
	pos        int
	groupCount int
}

// Parse builds the tree for pattern. The returned root spans the whole
// pattern. On failure the error is a *Error and no tree is returned.
func Parse(pattern string) (Node, error) {
	p := newParser(pattern)

	root, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}

	if p.more() {
		// parseAlternation only stops early on an unbalanced ')'.
		return nil, p.errorf(p.pos, "unmatched ')'")
	}

	return root, nil
}

func newParser(pattern string) *parser {
	runes := []rune(pattern)
	points := make([]Position, len(runes)+1)
	line, column := 0, 0

	for i, r := range runes {
		points[i] = Position{Line: line, Column: column, Offset: i}
		if r == '\n' {
			line++
			column = 0
		} else {
			column++
		}
	}

	points[len(runes)] = Position{Line: line, Column: column, Offset: len(runes)}

	return &parser{pattern: runes, points: points}
}

func (p *parser) more() bool {
	return p.pos < len(p.pattern)
}

func (p *parser) peek() rune {
	return p.pattern[p.pos]
}

func (p *parser) peekAt(i int) (rune, bool) {
	if i >= len(p.pattern) {
		return 0, false
	}

	return p.pattern[i], true
}

func (p *parser) next() rune {
	r := p.pattern[p.pos]
	p.pos++

	return r
}

// span converts the half-open rune range [start, end) into a Span. An empty
// range sits on the '|' that closes it, or else on the preceding rune, so it
// stays inside the enclosing alternation or group.
func (p *parser) span(start, end int) Span {
	if end > start {
		return Span{Start: p.points[start], End: p.points[end-1]}
	}

	at := start - 1
	if start < len(p.pattern) && p.pattern[start] == '|' {
		at = start
	}

	if at < 0 {
		at = 0
	}

	return Span{Start: p.points[at], End: p.points[at]}
}

func (p *parser) errorf(at int, format string, args ...any) *Error {
	return &Error{Pos: p.points[at], Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseAlternation() (Node, error) {
	start := p.pos

	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}

	branches := []Node{first}

	for p.more() && p.peek() == '|' {
		p.pos++

		branch, err := p.parseConcat()
		if err != nil {
			return nil, err
		}

		branches = append(branches, branch)
	}

	if len(branches) == 1 {
		return first, nil
	}

	return &Alternation{Branches: branches, Loc: p.span(start, p.pos)}, nil
}

func (p *parser) parseConcat() (Node, error) {
	start := p.pos

	var items []Node

	for p.more() {
		if ch := p.peek(); ch == '|' || ch == ')' {
			break
		}

		item, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if len(items) == 1 {
		return items[0], nil
	}

	return &Concat{Items: items, Loc: p.span(start, p.pos)}, nil
}

func (p *parser) parseTerm() (Node, error) {
	start := p.pos

	if anchor, ok := p.parseAnchor(); ok {
		if p.quantifierNext() {
			return nil, p.errorf(p.pos, "nothing to repeat")
		}

		return anchor, nil
	}

	if p.quantifierNext() {
		return nil, p.errorf(p.pos, "nothing to repeat")
	}

	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	return p.parseQuantifier(atom, start)
}

func (p *parser) parseAnchor() (Node, bool) {
	start := p.pos

	var kind AnchorKind

	switch p.peek() {
	case '^':
		kind = LineStart
	case '$':
		kind = LineEnd
	case '\\':
		next, ok := p.peekAt(p.pos + 1)
		if !ok {
			return nil, false
		}

		switch next {
		case 'b':
			kind = WordBoundary
		case 'B':
			kind = NonWordBoundary
		case 'A':
			kind = InputStart
		case 'z':
			kind = InputEnd
		case 'Z':
			kind = InputEndNewline
		default:
			return nil, false
		}

		p.pos++
	default:
		return nil, false
	}

	p.pos++

	return &Anchor{Kind: kind, Loc: p.span(start, p.pos)}, true
}

// quantifierNext reports whether a quantifier starts at the current position.
func (p *parser) quantifierNext() bool {
	if !p.more() {
		return false
	}

	switch p.peek() {
	case '*', '+', '?':
		return true
	case '{':
		_, ok := p.scanBraces(p.pos)
		return ok
	}

	return false
}

type braces struct {
	min, max int
	form     QuantifierForm
	end      int
	err      *Error
}

// scanBraces looks for `{n}`, `{n,}` or `{n,m}` at offset at without moving
// the parser. ok is false when the text is not a quantifier, in which case the
// brace is an ordinary character.
func (p *parser) scanBraces(at int) (braces, bool) {
	i := at + 1

	lo, i := p.scanDigits(i)
	if lo == "" {
		return braces{}, false
	}

	r, ok := p.peekAt(i)
	if !ok {
		return braces{}, false
	}

	b := braces{form: Exact}

	switch r {
	case '}':
		b.end = i + 1
	case ',':
		var hi string

		hi, i = p.scanDigits(i + 1)

		if r, ok := p.peekAt(i); !ok || r != '}' {
			return braces{}, false
		}

		b.end = i + 1
		b.form = AtLeast

		if hi != "" {
			b.form = Between
			b.max, b.err = p.bound(at, hi)
		}
	default:
		return braces{}, false
	}

	if b.err == nil {
		b.min, b.err = p.bound(at, lo)
	}

	switch b.form {
	case Exact:
		b.max = b.min
	case AtLeast:
		b.max = Unbounded
	case Between:
		if b.err == nil && b.min > b.max {
			b.err = p.errorf(at, "numbers out of order in {} quantifier")
		}
	}

	return b, true
}

func (p *parser) scanDigits(i int) (string, int) {
	start := i
	for i < len(p.pattern) && p.pattern[i] >= '0' && p.pattern[i] <= '9' {
		i++
	}

	return string(p.pattern[start:i]), i
}

func (p *parser) bound(at int, digits string) (int, *Error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxRepeat {
		return 0, p.errorf(at, "quantifier bound %s too large", digits)
	}

	return n, nil
}

func (p *parser) parseQuantifier(atom Node, start int) (Node, error) {
	if !p.more() {
		return atom, nil
	}

	q := &Quantifier{Expr: atom}

	switch p.peek() {
	case '*':
		q.Min, q.Max, q.Form = 0, Unbounded, Star
		p.pos++
	case '+':
		q.Min, q.Max, q.Form = 1, Unbounded, Plus
		p.pos++
	case '?':
		q.Min, q.Max, q.Form = 0, 1, Question
		p.pos++
	case '{':
		b, ok := p.scanBraces(p.pos)
		if !ok {
			return atom, nil
		}

		if b.err != nil {
			return nil, b.err
		}

		q.Min, q.Max, q.Form = b.min, b.max, b.form
		p.pos = b.end
	default:
		return atom, nil
	}

	if p.more() && p.peek() == '?' {
		q.Lazy = true
		p.pos++
	}

	q.Loc = p.span(start, p.pos)

	return q, nil
}

func (p *parser) parseAtom() (Node, error) {
	start := p.pos
	ch := p.next()

	switch ch {
	case '(':
		return p.parseGroup(start)
	case '[':
		return p.parseClass(start)
	case '.':
		return &Dot{Loc: p.span(start, p.pos)}, nil
	case '\\':
		return p.parseEscape(start, false)
	default:
		return &Literal{Char: ch, Raw: string(ch), Loc: p.span(start, p.pos)}, nil
	}
}

func (p *parser) parseGroup(start int) (Node, error) {
	kind := Capturing
	name := ""

	if p.more() && p.peek() == '?' {
		p.pos++

		var err error

		kind, name, err = p.parseGroupSpecifier(start)
		if err != nil {
			return nil, err
		}
	}

	index := 0
	if kind.Captures() {
		p.groupCount++
		index = p.groupCount
	}

	expr, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}

	if !p.more() || p.peek() != ')' {
		return nil, p.errorf(start, "unterminated group")
	}

	p.pos++

	return &Group{Expr: expr, Kind: kind, Name: name, Index: index, Loc: p.span(start, p.pos)}, nil
}

func (p *parser) parseGroupSpecifier(start int) (GroupKind, string, error) {
	if !p.more() {
		return 0, "", p.errorf(start, "unterminated group")
	}

	switch p.next() {
	case ':':
		return NonCapturing, "", nil
	case '=':
		return Lookahead, "", nil
	case '!':
		return NegativeLookahead, "", nil
	case '<':
		if p.more() && p.peek() == '=' {
			p.pos++
			return Lookbehind, "", nil
		}

		if p.more() && p.peek() == '!' {
			p.pos++
			return NegativeLookbehind, "", nil
		}

		name, err := p.parseName()
		if err != nil {
			return 0, "", err
		}

		return Named, name, nil
	}

	return 0, "", p.errorf(p.pos-1, "invalid group specifier")
}

// parseName reads `name>` for named groups and `\k<name>`.
func (p *parser) parseName() (string, error) {
	start := p.pos

	var b strings.Builder

	for p.more() && p.peek() != '>' {
		r := p.next()
		if !isNameRune(r, b.Len() == 0) {
			return "", p.errorf(p.pos-1, "invalid capture group name")
		}

		b.WriteRune(r)
	}

	if !p.more() || b.Len() == 0 {
		return "", p.errorf(start, "invalid capture group name")
	}

	p.pos++

	return b.String(), nil
}

func isNameRune(r rune, first bool) bool {
	switch {
	case r == '_' || r == '$':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return !first
	}

	return false
}

func (p *parser) parseClass(start int) (Node, error) {
	class := &CharClass{}

	if p.more() && p.peek() == '^' {
		class.Negated = true
		p.pos++
	}

	for {
		if !p.more() {
			return nil, p.errorf(start, "unterminated character class")
		}

		if p.peek() == ']' {
			p.pos++
			break
		}

		member, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}

		class.Members = append(class.Members, member)
	}

	class.Loc = p.span(start, p.pos)

	return class, nil
}

func (p *parser) parseClassMember() (Node, error) {
	start := p.pos

	from, err := p.parseClassAtom()
	if err != nil {
		return nil, err
	}

	dash, ok := p.peekAt(p.pos)
	if !ok || dash != '-' {
		return from, nil
	}

	if r, ok := p.peekAt(p.pos + 1); !ok || r == ']' {
		return from, nil
	}

	p.pos++

	to, err := p.parseClassAtom()
	if err != nil {
		return nil, err
	}

	lo, okFrom := from.(*Literal)
	hi, okTo := to.(*Literal)

	if !okFrom || !okTo {
		return nil, p.errorf(start, "invalid character class range")
	}

	if lo.Char > hi.Char {
		return nil, p.errorf(start, "range out of order in character class")
	}

	return &ClassRange{From: lo, To: hi, Loc: p.span(start, p.pos)}, nil
}

func (p *parser) parseClassAtom() (Node, error) {
	start := p.pos

	ch := p.next()
	if ch == '\\' {
		return p.parseEscape(start, true)
	}

	return &Literal{Char: ch, Raw: string(ch), Loc: p.span(start, p.pos)}, nil
}

// parseEscape handles everything after a backslash except the anchors, which
// parseAnchor consumes outside character classes.
func (p *parser) parseEscape(start int, inClass bool) (Node, error) {
	if !p.more() {
		return nil, p.errorf(start, `\ at end of pattern`)
	}

	ch := p.next()

	switch ch {
	case 'd', 'D', 'w', 'W', 's', 'S':
		return &PredefinedClass{Class: ch, Loc: p.span(start, p.pos)}, nil
	case 'p', 'P':
		return p.parseUnicodeClass(start, ch == 'P')
	case 'b':
		if inClass {
			return p.escapedLiteral(start, '\b'), nil
		}
	case 'k':
		if inClass {
			return nil, p.errorf(start, "backreference in character class")
		}

		if !p.more() || p.next() != '<' {
			return nil, p.errorf(start, `invalid named reference`)
		}

		name, err := p.parseName()
		if err != nil {
			return nil, err
		}

		return &Backreference{Name: name, Loc: p.span(start, p.pos)}, nil
	case 'n':
		return p.escapedLiteral(start, '\n'), nil
	case 'r':
		return p.escapedLiteral(start, '\r'), nil
	case 't':
		return p.escapedLiteral(start, '\t'), nil
	case 'f':
		return p.escapedLiteral(start, '\f'), nil
	case 'v':
		return p.escapedLiteral(start, '\v'), nil
	case '0':
		return p.escapedLiteral(start, 0), nil
	case 'x':
		return p.parseHexEscape(start, 2)
	case 'u':
		if p.more() && p.peek() == '{' {
			return p.parseCodePointEscape(start)
		}

		return p.parseHexEscape(start, 4)
	case 'c':
		if !p.more() || !isASCIILetter(p.peek()) {
			return nil, p.errorf(start, "invalid control escape")
		}

		return p.escapedLiteral(start, p.next()%32), nil
	}

	if ch >= '1' && ch <= '9' {
		if inClass {
			return nil, p.errorf(start, "backreference in character class")
		}

		digits, end := p.scanDigits(p.pos - 1)

		index, err := strconv.Atoi(digits)
		if err != nil {
			return nil, p.errorf(start, "invalid backreference")
		}

		p.pos = end

		return &Backreference{Index: index, Loc: p.span(start, p.pos)}, nil
	}

	if isASCIILetter(ch) || (ch >= '0' && ch <= '9') {
		return nil, p.errorf(start, `invalid escape sequence \%c`, ch)
	}

	return p.escapedLiteral(start, ch), nil
}

func (p *parser) escapedLiteral(start int, ch rune) *Literal {
	return &Literal{Char: ch, Raw: string(p.pattern[start:p.pos]), Loc: p.span(start, p.pos)}
}

func (p *parser) parseHexEscape(start int, width int) (Node, error) {
	if p.pos+width > len(p.pattern) {
		return nil, p.errorf(start, "invalid hexadecimal escape")
	}

	value, err := strconv.ParseUint(string(p.pattern[p.pos:p.pos+width]), 16, 32)
	if err != nil {
		return nil, p.errorf(start, "invalid hexadecimal escape")
	}

	p.pos += width

	return p.escapedLiteral(start, rune(value)), nil
}

func (p *parser) parseCodePointEscape(start int) (Node, error) {
	p.pos++ // '{'
	digitsStart := p.pos

	for p.more() && p.peek() != '}' {
		p.pos++
	}

	if !p.more() {
		return nil, p.errorf(start, "invalid unicode escape")
	}

	value, err := strconv.ParseUint(string(p.pattern[digitsStart:p.pos]), 16, 32)
	if err != nil || !utf8.ValidRune(rune(value)) {
		return nil, p.errorf(start, "invalid unicode escape")
	}

	p.pos++

	return p.escapedLiteral(start, rune(value)), nil
}

func (p *parser) parseUnicodeClass(start int, negated bool) (Node, error) {
	if !p.more() || p.next() != '{' {
		return nil, p.errorf(start, "invalid property name")
	}

	var b strings.Builder

	for p.more() && p.peek() != '}' {
		r := p.next()
		if !isASCIILetter(r) && !(r >= '0' && r <= '9') && r != '_' && r != '=' {
			return nil, p.errorf(p.pos-1, "invalid property name")
		}

		b.WriteRune(r)
	}

	if !p.more() || b.Len() == 0 {
		return nil, p.errorf(start, "invalid property name")
	}

	p.pos++

	return &UnicodeClass{Property: b.String(), Negated: negated, Loc: p.span(start, p.pos)}, nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
