package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	metaChars  = `\^$.|?*+()[]{}`
	classMeta  = `\]-`
	digitChars = "0123456789"
)

// Render serializes a tree back to pattern text. Render(Parse(p)) == p for
// every pattern Parse accepts.
func Render(n Node) string {
	var b strings.Builder

	render(&b, n)

	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Anchor:
		b.WriteString(n.Kind.String())
	case *Literal:
		writeLiteral(b, n, false)
	case *Dot:
		b.WriteByte('.')
	case *PredefinedClass:
		b.WriteByte('\\')
		b.WriteRune(n.Class)
	case *UnicodeClass:
		if n.Negated {
			b.WriteString(`\P{`)
		} else {
			b.WriteString(`\p{`)
		}

		b.WriteString(n.Property)
		b.WriteByte('}')
	case *CharClass:
		renderClass(b, n)
	case *ClassRange:
		writeLiteral(b, n.From, true)
		b.WriteByte('-')
		writeLiteral(b, n.To, true)
	case *Quantifier:
		renderQuantifier(b, n)
	case *Group:
		b.WriteString(groupOpener(n))
		render(b, n.Expr)
		b.WriteByte(')')
	case *Alternation:
		for i, branch := range n.Branches {
			if i > 0 {
				b.WriteByte('|')
			}

			render(b, branch)
		}
	case *Concat:
		renderConcat(b, n)
	case *Backreference:
		if n.Name != "" {
			b.WriteString(`\k<` + n.Name + `>`)
		} else {
			b.WriteString(`\` + strconv.Itoa(n.Index))
		}
	}
}

func renderConcat(b *strings.Builder, n *Concat) {
	parts := make([]string, len(n.Items))
	for i, item := range n.Items {
		parts[i] = Render(item)
	}

	for i, item := range n.Items {
		switch item := item.(type) {
		case *Backreference:
			if item.Name == "" && i+1 < len(parts) && startsWithDigit(parts[i+1]) {
				// `\1` followed by `0` would read back as `\10`.
				b.WriteString("(?:" + parts[i] + ")")
				continue
			}
		case *Literal:
			if parts[i] == "{" && bracesAhead(parts[i+1:]) {
				// A bare `{` followed by `n}` would read back as a quantifier.
				b.WriteString(`\{`)
				continue
			}
		}

		b.WriteString(parts[i])
	}
}

func startsWithDigit(text string) bool {
	return text != "" && strings.ContainsRune(digitChars, rune(text[0]))
}

// bracesAhead reports whether the rendered items start with `n}`, `n,}` or
// `n,m}`.
func bracesAhead(parts []string) bool {
	rest := strings.Join(parts, "")

	i := strings.IndexFunc(rest, func(r rune) bool { return !strings.ContainsRune(digitChars, r) })
	if i <= 0 {
		return false
	}

	rest = rest[i:]
	if strings.HasPrefix(rest, "}") {
		return true
	}

	if !strings.HasPrefix(rest, ",") {
		return false
	}

	rest = strings.TrimLeft(rest[1:], digitChars)

	return strings.HasPrefix(rest, "}")
}

func renderClass(b *strings.Builder, n *CharClass) {
	b.WriteByte('[')

	if n.Negated {
		b.WriteByte('^')
	}

	for i, member := range n.Members {
		if i == 0 && !n.Negated && leadingCaret(member) {
			// A leading `^` would turn into the negation marker.
			b.WriteString(`\^`)

			if r, ok := member.(*ClassRange); ok {
				b.WriteByte('-')
				writeLiteral(b, r.To, true)
			}

			continue
		}

		if lit, ok := member.(*Literal); ok {
			writeLiteral(b, lit, true)
			continue
		}

		render(b, member)
	}

	b.WriteByte(']')
}

func leadingCaret(n Node) bool {
	switch n := n.(type) {
	case *Literal:
		return bareCaret(n)
	case *ClassRange:
		return bareCaret(n.From)
	}

	return false
}

func bareCaret(l *Literal) bool {
	return l.Char == '^' && (l.Raw == "" || l.Raw == "^")
}

func renderQuantifier(b *strings.Builder, n *Quantifier) {
	switch n.Expr.(type) {
	case *Concat, *Alternation, *Quantifier:
		b.WriteString("(?:")
		render(b, n.Expr)
		b.WriteByte(')')
	default:
		render(b, n.Expr)
	}

	b.WriteString(QuantifierText(n.Form, n.Min, n.Max))

	if n.Lazy {
		b.WriteByte('?')
	}
}

// QuantifierText renders the bounds of a quantifier without the lazy suffix.
func QuantifierText(form QuantifierForm, minimum, maximum int) string {
	switch form {
	case Star:
		return "*"
	case Plus:
		return "+"
	case Question:
		return "?"
	case Exact:
		return fmt.Sprintf("{%d}", minimum)
	case AtLeast:
		return fmt.Sprintf("{%d,}", minimum)
	default:
		return fmt.Sprintf("{%d,%d}", minimum, maximum)
	}
}

func groupOpener(n *Group) string {
	switch n.Kind {
	case NonCapturing:
		return "(?:"
	case Named:
		return "(?<" + n.Name + ">"
	case Lookahead:
		return "(?="
	case NegativeLookahead:
		return "(?!"
	case Lookbehind:
		return "(?<="
	case NegativeLookbehind:
		return "(?<!"
	default:
		return "("
	}
}

func writeLiteral(b *strings.Builder, n *Literal, inClass bool) {
	if n.Raw != "" {
		b.WriteString(n.Raw)
		return
	}

	b.WriteString(EscapeRune(n.Char, inClass))
}

// EscapeRune returns the text that matches r literally, either on its own or
// inside a character class.
func EscapeRune(r rune, inClass bool) string {
	special := metaChars
	if inClass {
		special = classMeta
	}

	switch {
	case strings.ContainsRune(special, r):
		return `\` + string(r)
	case r < 0x100 && !unicode.IsPrint(r):
		return fmt.Sprintf(`\x%02X`, r)
	case r <= 0xFFFF && !unicode.IsPrint(r):
		return fmt.Sprintf(`\u%04X`, r)
	case !unicode.IsPrint(r):
		return fmt.Sprintf(`\u{%X}`, r)
	}

	return string(r)
}
