package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantifiers(t *testing.T) {
	quantifiers := Quantifiers()

	t.Run("removal", func(t *testing.T) {
		runCases(t, find(t, quantifiers, "Quantifier removal"), []applyCase{
			{pattern: "a+", want: []string{"a"}},
			{pattern: "(ab){2,3}?", want: []string{"(ab)"}},
			{pattern: "(?:a+)*", want: []string{"(?:a+)", "(?:a)*"}},
			{pattern: "a", want: nil},
		})
	})

	t.Run("exact change", func(t *testing.T) {
		runCases(t, find(t, quantifiers, "Quantifier `{n}` change"), []applyCase{
			{pattern: "a{3}", want: []string{"a{0,3}", "a{3,}"}},
			{pattern: "a{3}?", want: []string{"a{0,3}?", "a{3,}?"}},
		})
	})

	t.Run("at least modification", func(t *testing.T) {
		runCases(t, find(t, quantifiers, "Quantifier `{n,}` modification"), []applyCase{
			{pattern: "a{3,}", want: []string{"a{2,}", "a{4,}"}},
			{pattern: "a{0,}", want: []string{"a{1,}"}},
			{pattern: "a{65536,}", want: []string{"a{65535,}"}},
		})
	})

	t.Run("at least change", func(t *testing.T) {
		runCases(t, find(t, quantifiers, "Quantifier `{n,}` change"), []applyCase{
			{pattern: "a{3,}", want: []string{"a{3}"}},
			{pattern: "a{3}", want: nil},
		})
	})

	t.Run("between modification", func(t *testing.T) {
		runCases(t, find(t, quantifiers, "Quantifier `{n,m}` modification"), []applyCase{
			{pattern: "a{2,5}", want: []string{"a{1,5}", "a{3,5}", "a{2,4}", "a{2,6}"}},
			{pattern: "a{0,1}", want: []string{"a{1,1}", "a{0,0}", "a{0,2}"}},
			{pattern: "a{2,2}", want: []string{"a{1,2}", "a{2,3}"}},
		})
	})

	t.Run("short modification", func(t *testing.T) {
		runCases(t, find(t, quantifiers, "Short quantifier modification"), []applyCase{
			{pattern: "a*", want: []string{"a{1,}"}},
			{pattern: "a+", want: []string{"a{0,}", "a{2,}"}},
			{pattern: "a?", want: []string{"a{1,1}", "a{0,2}"}},
			{pattern: "a*?", want: []string{"a{1,}?"}},
		})
	})

	t.Run("short change", func(t *testing.T) {
		runCases(t, find(t, quantifiers, "Short quantifier change"), []applyCase{
			{pattern: "a*", want: []string{"a+", "a?"}},
			{pattern: "a+?", want: []string{"a*?", "a??"}},
			{pattern: "a?", want: []string{"a*", "a+"}},
			{pattern: "a{2}", want: nil},
		})
	})

	t.Run("reluctant addition", func(t *testing.T) {
		runCases(t, find(t, quantifiers, "Quantifier reluctant addition"), []applyCase{
			{pattern: "a+", want: []string{"a+?"}},
			{pattern: "a{2,3}", want: []string{"a{2,3}?"}},
			{pattern: "a+?", want: nil},
		})
	})

	t.Run("reluctant removal", func(t *testing.T) {
		runCases(t, find(t, quantifiers, "Quantifier reluctant removal"), []applyCase{
			{pattern: "a*?", want: []string{"a*"}},
			{pattern: "a*", want: nil},
		})
	})
}

func TestQuantifiers_Descriptions(t *testing.T) {
	candidates := applyAll(t, find(t, Quantifiers(), "Quantifier removal"), "a+?")
	require.Len(t, candidates, 1)
	assert.Equal(t, "Remove the quantifier `+?` from `a+?`", candidates[0].Description)

	candidates = applyAll(t, find(t, Quantifiers(), "Short quantifier change"), "a*")
	require.Len(t, candidates, 2)
	assert.Equal(t, "Change the quantifier `a*` to `a+`", candidates[0].Description)
}
