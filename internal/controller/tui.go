package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "regmut.dev/pkg/regmut/internal/model"
)

const defaultWidth = 80

// TUI implements UI with a Bubble Tea browser. Results that fit the terminal
// are printed once; longer ones open an alternate screen until the user quits.
type TUI struct {
	output  io.Writer
	simple  *SimpleUI
	config  StartConfig
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		output: cmd.OutOrStdout(),
		simple: NewSimpleUI(cmd),
		config: newStartConfig(),
	}
}

// Start records the display mode and format.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.config = newStartConfig(options...)

	return t.simple.Start(ctx, options...)
}

// Close stops a running browser.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program != nil {
		t.program.Quit()
		<-t.done
		t.program = nil
	}
}

// Wait blocks until the user leaves the browser.
func (t *TUI) Wait(ctx context.Context) {
	if t.done == nil {
		return
	}

	select {
	case <-t.done:
	case <-ctx.Done():
	}
}

// DisplayReports shows every mutant of reports.
func (t *TUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.config.format != FormatTable {
		return t.simple.DisplayReports(ctx, reports)
	}

	stats := summarize(reports)
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	summary := fmt.Sprintf("Patterns: %s   Mutants: %s   Failed: %s",
		accent.Render(fmt.Sprintf("%d", stats.patterns)),
		accent.Render(fmt.Sprintf("%d", stats.mutants)),
		accent.Render(fmt.Sprintf("%d", stats.failed)),
	)

	heading := "Regex Mutants"
	if t.config.mode == ModeView {
		heading = "Saved Regex Mutants"
	}

	return t.show(newBrowserModel(heading, summary, fmt.Sprintf("%-8s  %s", "Levels", "Mutant"), reportItems(reports)))
}

// DisplayMutators shows the mutator catalog.
func (t *TUI) DisplayMutators(ctx context.Context, mutators []m.Mutator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.config.format != FormatTable {
		return t.simple.DisplayMutators(ctx, mutators)
	}

	items := make([]list.Item, 0, len(mutators))
	for _, mutator := range mutators {
		items = append(items, browserItem{
			title:  mutator.Name,
			detail: mutator.Description,
			badge:  formatLevels(mutator.Levels),
		})
	}

	summary := fmt.Sprintf("Mutators: %s", lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(fmt.Sprintf("%d", len(items))))

	return t.show(newBrowserModel("Regex Mutators", summary, fmt.Sprintf("%-8s  %s", "Levels", "Mutator"), items))
}

func reportItems(reports []m.Report) []list.Item {
	items := make([]list.Item, 0, m.CountMutants(reports)+len(reports))

	for _, report := range reports {
		if report.Failed() {
			items = append(items, browserItem{
				title:  report.Source.String(),
				detail: "error: " + report.Error,
				badge:  "-",
			})

			continue
		}

		for _, mutant := range report.Mutants {
			items = append(items, browserItem{
				title:  mutant.Pattern,
				detail: fmt.Sprintf("%s · %s · %s", mutant.Name, formatLocation(mutant.Location), report.Source),
				badge:  formatLevels(mutant.MutationLevels),
			})
		}
	}

	return items
}

// show prints the browser once when it fits the terminal, and runs it
// interactively otherwise.
func (t *TUI) show(model browserModel) error {
	width, height, ok := t.terminalSize()
	if !ok || fitsTerminal(model, height) {
		if !ok {
			width = defaultWidth
		}

		_, err := fmt.Fprintln(t.output, model.static(width).View())

		return err
	}

	model.width = width
	model.height = height

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			slog.Error("Browser stopped with error", "error", err)
		}
	}()

	return nil
}

func fitsTerminal(model browserModel, height int) bool {
	return len(model.items.Items())*model.delegate.Height()+chromeHeight+2 <= height
}

func (t *TUI) terminalSize() (int, int, bool) {
	file, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}

	return width, height, true
}
