package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "regmut.dev/pkg/regmut/internal/model"
	"regmut.dev/pkg/regmut/internal/syntax"
)

type applyCase struct {
	pattern string
	want    []string
}

// applyAll walks pattern and collects the rendered candidates of mutator.
func applyAll(t *testing.T, mutator m.Mutator, pattern string) []m.Candidate {
	t.Helper()

	tree, err := syntax.Parse(pattern)
	require.NoError(t, err)

	var candidates []m.Candidate

	syntax.Walk(tree, func(c *syntax.Cursor) bool {
		candidates = append(candidates, mutator.Apply(c)...)
		return true
	})

	assert.Equal(t, pattern, syntax.Render(tree), "the parsed tree must not change")

	return candidates
}

func rendered(candidates []m.Candidate) []string {
	var out []string
	for _, c := range candidates {
		out = append(out, syntax.Render(c.Root))
	}

	return out
}

func find(t *testing.T, mutators []m.Mutator, name string) m.Mutator {
	t.Helper()

	for _, mutator := range mutators {
		if mutator.Name == name {
			return mutator
		}
	}

	require.Failf(t, "mutator not found", "%q", name)

	return m.Mutator{}
}

func runCases(t *testing.T, mutator m.Mutator, cases []applyCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			got := rendered(applyAll(t, mutator, tc.pattern))
			assert.Equal(t, tc.want, got)

			for _, text := range got {
				_, err := syntax.Parse(text)
				assert.NoError(t, err, "candidate %q must parse", text)
			}
		})
	}
}

func TestRemove_KeepsAlternationBranches(t *testing.T) {
	tree, err := syntax.Parse("a|^|b")
	require.NoError(t, err)

	var got string

	syntax.Walk(tree, func(c *syntax.Cursor) bool {
		if _, ok := c.Node().(*syntax.Anchor); ok {
			got = syntax.Render(remove(c))
		}

		return true
	})

	assert.Equal(t, "a||b", got)
}

func TestQuote(t *testing.T) {
	tree, err := syntax.Parse("[a-z]+")
	require.NoError(t, err)
	assert.Equal(t, "`[a-z]+`", quote(tree))
}
