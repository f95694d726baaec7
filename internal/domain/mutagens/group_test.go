package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"regmut.dev/pkg/regmut/internal/syntax"
)

func TestGroups(t *testing.T) {
	groups := Groups()

	t.Run("capturing to non-capturing", func(t *testing.T) {
		runCases(t, find(t, groups, "Capturing group to non-capturing group"), []applyCase{
			{pattern: "(a)(?<n>b)", want: []string{"(?:a)(?<n>b)", "(a)(?:b)"}},
			{pattern: "(?:a)(?=b)", want: nil},
			{pattern: `(a)(b)\2`, want: nil},
			{pattern: `(a)\1(b)`, want: []string{`(a)\1(?:b)`}},
			{pattern: `(?<n>a)\k<n>(?<m>b)`, want: []string{`(?<n>a)\k<n>(?:b)`}},
		})
	})

	t.Run("non-capturing to capturing", func(t *testing.T) {
		runCases(t, find(t, groups, "Non-capturing group to capturing group"), []applyCase{
			{pattern: "(?:a)", want: []string{"(a)"}},
			{pattern: "(a)", want: nil},
			{pattern: `(a)(?:b)\1`, want: []string{`(a)(b)\1`}},
			{pattern: `(?:a)(b)\1`, want: nil},
			{pattern: `(?:a)(?<n>b)\k<n>`, want: []string{`(a)(?<n>b)\k<n>`}},
		})
	})

	t.Run("lookaround negation", func(t *testing.T) {
		runCases(t, find(t, groups, "Lookaround negation"), []applyCase{
			{pattern: "(?=a)(?!b)(?<=c)(?<!d)", want: []string{
				"(?!a)(?!b)(?<=c)(?<!d)",
				"(?=a)(?=b)(?<=c)(?<!d)",
				"(?=a)(?!b)(?<!c)(?<!d)",
				"(?=a)(?!b)(?<=c)(?<=d)",
			}},
		})
	})
}

func TestGroups_CaptureIndex(t *testing.T) {
	candidates := applyAll(t, find(t, Groups(), "Non-capturing group to capturing group"), "(x)(?:a)(y)")
	require.Len(t, candidates, 1)

	want, err := syntax.Parse("(x)(a)(y)")
	require.NoError(t, err)

	concat, ok := candidates[0].Root.(*syntax.Concat)
	require.True(t, ok)

	group, ok := concat.Items[1].(*syntax.Group)
	require.True(t, ok)
	assert.Equal(t, 2, group.Index)
	assert.Equal(t, syntax.Render(want), syntax.Render(candidates[0].Root))
}
