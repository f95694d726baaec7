package model

import "strconv"

// Source is a pattern to mutate and where it came from. Origin is empty for
// patterns given on the command line; Line is 1-based.
type Source struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Origin  string `json:"origin,omitempty" yaml:"origin,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// String returns "origin:line" for file patterns and the pattern otherwise.
func (s Source) String() string {
	if s.Origin == "" {
		return s.Pattern
	}

	return s.Origin + ":" + strconv.Itoa(s.Line)
}
