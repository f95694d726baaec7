package model

// Point is a zero-based line and column inside a pattern.
type Point struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Location covers the part of the original pattern a mutant changed. End is
// inclusive.
type Location struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// Mutant is one mutated pattern together with what produced it.
type Mutant struct {
	Pattern        string   `json:"pattern" yaml:"pattern"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Location       Location `json:"location" yaml:"location"`
	MutationLevels []int    `json:"mutationLevels" yaml:"mutationLevels"`
}
