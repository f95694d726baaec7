package model

// Report holds the mutants generated for one source. Error is set instead of
// Mutants when the pattern could not be mutated.
type Report struct {
	Source  Source   `json:"source" yaml:"source"`
	Mutants []Mutant `json:"mutants" yaml:"mutants"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the source could not be mutated.
func (r Report) Failed() bool {
	return r.Error != ""
}

// ReportFile is the document written by the report store.
type ReportFile struct {
	Version  int      `json:"version" yaml:"version"`
	Levels   []int    `json:"levels,omitempty" yaml:"levels,omitempty"`
	Mutators []string `json:"mutators,omitempty" yaml:"mutators,omitempty"`
	Reports  []Report `json:"reports" yaml:"reports"`
}

// CountMutants returns the number of mutants across reports.
func CountMutants(reports []Report) int {
	total := 0
	for _, r := range reports {
		total += len(r.Mutants)
	}

	return total
}
