package syntax

// Equal reports whether a and b have the same structure. Spans and the raw
// spelling of literals are ignored.
//
//nolint:cyclop // one case per node kind
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Anchor:
		b, ok := b.(*Anchor)
		return ok && a.Kind == b.Kind
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Char == b.Char
	case *Dot:
		_, ok := b.(*Dot)
		return ok
	case *PredefinedClass:
		b, ok := b.(*PredefinedClass)
		return ok && a.Class == b.Class
	case *UnicodeClass:
		b, ok := b.(*UnicodeClass)
		return ok && a.Property == b.Property && a.Negated == b.Negated
	case *ClassRange:
		b, ok := b.(*ClassRange)
		return ok && Equal(a.From, b.From) && Equal(a.To, b.To)
	case *CharClass:
		b, ok := b.(*CharClass)
		return ok && a.Negated == b.Negated && equalAll(a.Members, b.Members)
	case *Quantifier:
		b, ok := b.(*Quantifier)
		return ok && a.Min == b.Min && a.Max == b.Max && a.Lazy == b.Lazy && a.Form == b.Form && Equal(a.Expr, b.Expr)
	case *Group:
		b, ok := b.(*Group)
		return ok && a.Kind == b.Kind && a.Name == b.Name && a.Index == b.Index && Equal(a.Expr, b.Expr)
	case *Alternation:
		b, ok := b.(*Alternation)
		return ok && equalAll(a.Branches, b.Branches)
	case *Concat:
		b, ok := b.(*Concat)
		return ok && equalAll(a.Items, b.Items)
	case *Backreference:
		b, ok := b.(*Backreference)
		return ok && a.Index == b.Index && a.Name == b.Name
	}

	return false
}

func equalAll(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
