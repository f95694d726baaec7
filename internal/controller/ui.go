// Package controller provides the front ends that display mutants and the
// mutator catalog.
package controller

import (
	"context"
	"fmt"
	"strings"

	m "regmut.dev/pkg/regmut/internal/model"
)

// Format selects how results are printed.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat converts a flag or config value into a Format.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("unsupported format %q (want table, json or yaml)", value)
}

// StartMode defines what the UI is about to show.
type StartMode int

// Available StartMode values.
const (
	ModeMutate StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	format Format
}

func newStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModeMutate, format: FormatTable}
	for _, option := range options {
		option(&config)
	}

	return config
}

// WithMutateMode shows freshly generated mutants.
func WithMutateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMutate
	}
}

// WithListMode shows the mutator catalog.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode shows mutants loaded from a report file.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithFormat sets the output format.
func WithFormat(format Format) StartOption {
	return func(c *StartConfig) {
		if format != "" {
			c.format = format
		}
	}
}

// UI defines how the workflow presents its results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayReports(ctx context.Context, reports []m.Report) error
	DisplayMutators(ctx context.Context, mutators []m.Mutator) error
}
