package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchors(t *testing.T) {
	anchors := Anchors()

	t.Run("beginning of line removal", func(t *testing.T) {
		runCases(t, find(t, anchors, "Beginning of line character `^` removal"), []applyCase{
			{pattern: "^a", want: []string{"a"}},
			{pattern: "^", want: []string{""}},
			{pattern: "a|^", want: []string{"a|"}},
			{pattern: "a$", want: nil},
		})
	})

	t.Run("end of line removal", func(t *testing.T) {
		runCases(t, find(t, anchors, "End of line character `$` removal"), []applyCase{
			{pattern: "a$", want: []string{"a"}},
			{pattern: "^a$|b$", want: []string{"^a|b$", "^a$|b"}},
		})
	})

	t.Run("beginning of line to beginning of input", func(t *testing.T) {
		runCases(t, find(t, anchors, "Beginning of line character `^` to beginning of input `\\A`"), []applyCase{
			{pattern: "^a", want: []string{`\Aa`}},
			{pattern: `\Aa`, want: nil},
		})
	})

	t.Run("end of line to end of input", func(t *testing.T) {
		runCases(t, find(t, anchors, "End of line character `$` to end of input `\\z`"), []applyCase{
			{pattern: "(a$)", want: []string{`(a\z)`}},
		})
	})

	t.Run("word boundary removal", func(t *testing.T) {
		runCases(t, find(t, anchors, "Word boundary removal"), []applyCase{
			{pattern: `\bfoo\B`, want: []string{`foo\B`, `\bfoo`}},
			{pattern: `foo`, want: nil},
		})
	})

	t.Run("word boundary negation", func(t *testing.T) {
		runCases(t, find(t, anchors, "Word boundary negation"), []applyCase{
			{pattern: `\bfoo\B`, want: []string{`\Bfoo\B`, `\bfoo\b`}},
		})
	})
}

func TestAnchors_Descriptions(t *testing.T) {
	anchors := Anchors()

	candidates := applyAll(t, find(t, anchors, "Beginning of line character `^` removal"), "^a")
	require.Len(t, candidates, 1)
	assert.Equal(t, "Remove beginning of line character `^`", candidates[0].Description)

	candidates = applyAll(t, find(t, anchors, "Word boundary removal"), `\ba\B`)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Remove word boundary `\\b`", candidates[0].Description)
	assert.Equal(t, "Remove non-word boundary `\\B`", candidates[1].Description)
}
