package syntax

// Cursor points at one node of a tree during Walk and builds rewritten copies
// of the tree around it. A Cursor is only valid inside the Walk callback that
// received it.
type Cursor struct {
	root Node
	node Node
	path []step
}

type step struct {
	parent Node
	index  int
}

// Walk visits every node of root in depth-first pre-order. Children are
// skipped when fn returns false.
func Walk(root Node, fn func(c *Cursor) bool) {
	c := &Cursor{root: root}
	c.walk(root, fn)
}

func (c *Cursor) walk(n Node, fn func(c *Cursor) bool) {
	c.node = n
	if !fn(c) {
		return
	}

	for i, child := range Children(n) {
		c.path = append(c.path, step{parent: n, index: i})
		c.walk(child, fn)
		c.path = c.path[:len(c.path)-1]
	}
}

// Node returns the node under the cursor.
func (c *Cursor) Node() Node {
	return c.node
}

// Root returns the tree being walked.
func (c *Cursor) Root() Node {
	return c.root
}

// Parent returns the direct parent, or nil at the root.
func (c *Cursor) Parent() Node {
	if len(c.path) == 0 {
		return nil
	}

	return c.path[len(c.path)-1].parent
}

// Index returns the position of the node among its parent's children, or -1
// at the root.
func (c *Cursor) Index() int {
	if len(c.path) == 0 {
		return -1
	}

	return c.path[len(c.path)-1].index
}

// InClass reports whether the node sits inside a character class.
func (c *Cursor) InClass() bool {
	for _, s := range c.path {
		if _, ok := s.parent.(*CharClass); ok {
			return true
		}
	}

	return false
}

// Replace returns a new root in which the node under the cursor is n. Nodes
// off the path to the root are shared with the original tree, and rebuilt
// ancestors keep their original spans.
func (c *Cursor) Replace(n Node) Node {
	return c.rebuild(len(c.path)-1, n)
}

// Delete returns a new root without the node under the cursor. The node is
// dropped from a concatenation, a character class or an alternation; a
// two-branch alternation collapses into the remaining branch; deleting a
// range endpoint deletes the range; anywhere else the node becomes an empty
// concatenation.
func (c *Cursor) Delete() Node {
	depth := len(c.path) - 1
	if depth < 0 {
		return &Concat{Loc: emptyAt(c.node.Span())}
	}

	if _, ok := c.path[depth].parent.(*ClassRange); ok {
		depth--
	}

	s := c.path[depth]

	return c.rebuild(depth-1, deleteChild(s.parent, s.index))
}

func (c *Cursor) rebuild(depth int, child Node) Node {
	for ; depth >= 0; depth-- {
		s := c.path[depth]
		child = withChild(s.parent, s.index, child)
	}

	return child
}

func emptyAt(s Span) Span {
	return Span{Start: s.Start, End: s.Start}
}

func withoutIndex(nodes []Node, index int) []Node {
	out := make([]Node, 0, len(nodes)-1)
	out = append(out, nodes[:index]...)

	return append(out, nodes[index+1:]...)
}

func withIndex(nodes []Node, index int, n Node) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	out[index] = n

	return out
}

func deleteChild(parent Node, index int) Node {
	switch p := parent.(type) {
	case *Concat:
		return &Concat{Items: withoutIndex(p.Items, index), Loc: p.Loc}
	case *CharClass:
		return &CharClass{Negated: p.Negated, Members: withoutIndex(p.Members, index), Loc: p.Loc}
	case *Alternation:
		branches := withoutIndex(p.Branches, index)
		if len(branches) == 1 {
			return branches[0]
		}

		return &Alternation{Branches: branches, Loc: p.Loc}
	default:
		child := Children(parent)[index]
		return withChild(parent, index, &Concat{Loc: emptyAt(child.Span())})
	}
}

func withChild(parent Node, index int, child Node) Node {
	switch p := parent.(type) {
	case *Concat:
		return &Concat{Items: withIndex(p.Items, index, child), Loc: p.Loc}
	case *CharClass:
		return &CharClass{Negated: p.Negated, Members: withIndex(p.Members, index, child), Loc: p.Loc}
	case *Alternation:
		return &Alternation{Branches: withIndex(p.Branches, index, child), Loc: p.Loc}
	case *Group:
		g := *p
		g.Expr = child

		return &g
	case *Quantifier:
		q := *p
		q.Expr = child

		return &q
	case *ClassRange:
		lit, ok := child.(*Literal)
		if !ok {
			panic("syntax: class range endpoints must be literals")
		}

		r := *p
		if index == 0 {
			r.From = lit
		} else {
			r.To = lit
		}

		return &r
	}

	panic("syntax: node has no children")
}
