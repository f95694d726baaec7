package mutagens

import (
	"testing"
)

func TestBackreferences(t *testing.T) {
	runCases(t, find(t, Backreferences(), "Backreference removal"), []applyCase{
		{pattern: `(a)\1`, want: []string{"(a)"}},
		{pattern: `(a)\1*`, want: nil},
		{pattern: `(?<x>a)\k<x>|b`, want: []string{"(?<x>a)|b"}},
		{pattern: `a|\1`, want: []string{"a|"}},
	})
}
