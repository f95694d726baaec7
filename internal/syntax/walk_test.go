package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rewriteFirst renders the tree produced by rewrite at the first matching node.
func rewriteFirst(t *testing.T, pattern string, match func(Node) bool, rewrite func(c *Cursor) Node) string {
	t.Helper()

	tree, err := Parse(pattern)
	require.NoError(t, err)

	var result Node

	Walk(tree, func(c *Cursor) bool {
		if result != nil {
			return false
		}

		if match(c.Node()) {
			result = rewrite(c)
			return false
		}

		return true
	})

	require.NotNil(t, result, "no node matched in %q", pattern)
	assert.Equal(t, pattern, Render(tree), "original tree must not change")

	return Render(result)
}

func literal(ch rune) func(Node) bool {
	return func(n Node) bool {
		lit, ok := n.(*Literal)
		return ok && lit.Char == ch
	}
}

func TestCursor_Delete(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		target  rune
		want    string
	}{
		{"concat item", "abc", 'b', "ac"},
		{"two branch alternation collapses", "a|b", 'a', "b"},
		{"three branch alternation", "a|b|c", 'b', "a|c"},
		{"class member", "[abc]", 'a', "[bc]"},
		{"range endpoint removes range", "[a-z0]", 'z', "[0]"},
		{"group body", "(a)", 'a', "()"},
		{"quantified expression", "a*", 'a', "(?:)*"},
		{"root", "a", 'a', ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewriteFirst(t, tt.pattern, literal(tt.target), func(c *Cursor) Node {
				return c.Delete()
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCursor_Replace(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		target  rune
		with    Node
		want    string
	}{
		{"literal to dot", "abc", 'b', &Dot{}, "a.c"},
		{"nested in group", "x(ab)+", 'b', &Literal{Char: '.'}, `x(a\.)+`},
		{"class member", "[ab]", 'b', &PredefinedClass{Class: 'd'}, `[a\d]`},
		{"range endpoint", "[a-c]", 'c', &Literal{Char: 'd'}, "[a-d]"},
		{"root", "a", 'a', &Anchor{Kind: InputEnd}, `\z`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewriteFirst(t, tt.pattern, literal(tt.target), func(c *Cursor) Node {
				return c.Replace(tt.with)
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCursor_Position(t *testing.T) {
	tree, err := Parse("[a]b(c)")
	require.NoError(t, err)

	type seen struct {
		parent  string
		index   int
		inClass bool
	}

	got := map[rune]seen{}

	Walk(tree, func(c *Cursor) bool {
		if lit, ok := c.Node().(*Literal); ok {
			got[lit.Char] = seen{parent: Render(c.Parent()), index: c.Index(), inClass: c.InClass()}
		}

		assert.Same(t, tree, c.Root())

		return true
	})

	assert.Equal(t, map[rune]seen{
		'a': {parent: "[a]", index: 0, inClass: true},
		'b': {parent: "[a]b(c)", index: 1, inClass: false},
		'c': {parent: "(c)", index: 0, inClass: false},
	}, got)
}

func TestCursor_RootHasNoParent(t *testing.T) {
	tree, err := Parse("a")
	require.NoError(t, err)

	Walk(tree, func(c *Cursor) bool {
		assert.Nil(t, c.Parent())
		assert.Equal(t, -1, c.Index())
		assert.False(t, c.InClass())

		return true
	})
}

func TestWalk_SkipsChildren(t *testing.T) {
	tree, err := Parse("(ab)c")
	require.NoError(t, err)

	var visited []string

	Walk(tree, func(c *Cursor) bool {
		visited = append(visited, Render(c.Node()))
		_, isGroup := c.Node().(*Group)

		return !isGroup
	})

	assert.Equal(t, []string{"(ab)c", "(ab)", "c"}, visited)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"abc", "abc", true},
		{`\x41`, "A", true},
		{"a|b", "a|b", true},
		{"a|b", "b|a", false},
		{"a*", "a*?", false},
		{"a{0,}", "a*", false},
		{"(a)", "(?:a)", false},
		{"[ab]", "[^ab]", false},
		{`\d`, `\D`, false},
		{`\p{L}`, `\P{L}`, false},
		{"[a-c]", "[a-c]", true},
		{"", "", true},
		{"a", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a, err := Parse(tt.a)
			require.NoError(t, err)
			b, err := Parse(tt.b)
			require.NoError(t, err)

			assert.Equal(t, tt.want, Equal(a, b))
		})
	}
}
