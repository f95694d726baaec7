package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "regmut.dev/pkg/regmut/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newStartConfig()}
}

// Start records the display mode and format.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayReports prints the mutants of every report in the configured format.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.config.format {
	case FormatJSON:
		return s.printJSON(reports)
	case FormatYAML:
		return s.printYAML(reports)
	}

	s.printf("%s", renderReportsTable(reports))

	for _, report := range reports {
		if report.Failed() {
			s.printf("error: %s: %s\n", report.Source, report.Error)
		}
	}

	return nil
}

// DisplayMutators prints the mutator catalog in the configured format.
func (s *SimpleUI) DisplayMutators(ctx context.Context, mutators []m.Mutator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	views := mutatorViews(mutators)

	switch s.config.format {
	case FormatJSON:
		return s.printJSON(views)
	case FormatYAML:
		return s.printYAML(views)
	}

	s.printf("%s", renderMutatorsTable(views))

	return nil
}

// mutatorView is the serializable part of a mutator.
type mutatorView struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Levels      []int  `json:"levels" yaml:"levels"`
}

func mutatorViews(mutators []m.Mutator) []mutatorView {
	views := make([]mutatorView, 0, len(mutators))
	for _, mutator := range mutators {
		views = append(views, mutatorView{
			Name:        mutator.Name,
			Description: mutator.Description,
			Levels:      mutator.Levels,
		})
	}

	return views
}

func renderReportsTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Mutant", "Mutator", "Location", "Levels"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, report := range reports {
		for _, mutant := range report.Mutants {
			table.Append([]string{
				report.Source.String(),
				mutant.Pattern,
				mutant.Name,
				formatLocation(mutant.Location),
				formatLevels(mutant.MutationLevels),
			})
		}
	}

	stats := summarize(reports)
	table.SetFooter([]string{
		fmt.Sprintf("Total Patterns %d", stats.patterns),
		fmt.Sprintf("%d", stats.mutants),
		"",
		"",
		fmt.Sprintf("Failed %d", stats.failed),
	})

	table.Render()

	return tableBuffer.String()
}

func renderMutatorsTable(views []mutatorView) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Mutator", "Levels", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, view := range views {
		table.Append([]string{view.Name, formatLevels(view.Levels), view.Description})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Mutators %d", len(views)), "", ""})

	table.Render()

	return tableBuffer.String()
}

func formatLocation(loc m.Location) string {
	return fmt.Sprintf("%d:%d-%d:%d", loc.Start.Line, loc.Start.Column, loc.End.Line, loc.End.Column)
}

func formatLevels(levels []int) string {
	parts := make([]string, 0, len(levels))
	for _, level := range levels {
		parts = append(parts, strconv.Itoa(level))
	}

	return strings.Join(parts, ",")
}

func (s *SimpleUI) printJSON(v any) error {
	encoder := json.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func (s *SimpleUI) printYAML(v any) error {
	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return encoder.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
