package controller

import (
	m "regmut.dev/pkg/regmut/internal/model"
)

// summary aggregates a batch of reports for table footers and TUI headers.
type summary struct {
	patterns int
	failed   int
	mutants  int
}

func summarize(reports []m.Report) summary {
	s := summary{patterns: len(reports)}

	for _, report := range reports {
		if report.Failed() {
			s.failed++
			continue
		}

		s.mutants += len(report.Mutants)
	}

	return s
}
