package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"regmut.dev/pkg/regmut/internal/adapter"
	"regmut.dev/pkg/regmut/internal/controller"
	m "regmut.dev/pkg/regmut/internal/model"
)

var (
	// ErrNoPatterns is returned when a batch has nothing to mutate.
	ErrNoPatterns = errors.New("no patterns to mutate")
	// ErrNoReportFile is returned when view has no report file to load.
	ErrNoReportFile = errors.New("no report file given")
)

// MutateArgs contains the arguments for mutating a batch of patterns.
type MutateArgs struct {
	Patterns []string
	Files    []string
	Options  Options
	Threads  int
	Save     string
	Format   controller.Format
}

// ListArgs contains the arguments for listing the mutator catalog.
type ListArgs struct {
	Levels []int
	Format controller.Format
}

// ViewArgs contains the arguments for showing a saved report file.
type ViewArgs struct {
	Save   string
	Format controller.Format
}

// Workflow runs the commands of the regmut CLI.
type Workflow interface {
	Mutate(ctx context.Context, args MutateArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.PatternSource
	adapter.ReportStore
	controller.UI
	Mutagen
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	patternSource adapter.PatternSource,
	reportStore adapter.ReportStore,
	ui controller.UI,
	mutagen Mutagen,
) Workflow {
	return &workflow{
		PatternSource: patternSource,
		ReportStore:   reportStore,
		UI:            ui,
		Mutagen:       mutagen,
	}
}

func (w *workflow) Mutate(ctx context.Context, args MutateArgs) error {
	if _, err := Select(w.Catalog(), args.Options); err != nil {
		return err
	}

	sources, err := w.collectSources(ctx, args)
	if err != nil {
		return err
	}

	reports, err := w.mutateSources(ctx, sources, args.Options, args.Threads)
	if err != nil {
		return fmt.Errorf("mutate patterns: %w", err)
	}

	if args.Save != "" {
		file := m.ReportFile{
			Version:  adapter.ReportFileVersion,
			Levels:   args.Options.Levels,
			Mutators: args.Options.Mutators,
			Reports:  reports,
		}

		if err := w.SaveReports(args.Save, file); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		slog.Info("Saved reports", "path", args.Save, "patterns", len(reports), "mutants", m.CountMutants(reports))
	}

	return w.show(ctx, func(ctx context.Context) error {
		return w.DisplayReports(ctx, reports)
	}, controller.WithMutateMode(), controller.WithFormat(args.Format))
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	mutators, err := Select(w.Catalog(), Options{Levels: args.Levels})
	if err != nil {
		return err
	}

	return w.show(ctx, func(ctx context.Context) error {
		return w.DisplayMutators(ctx, mutators)
	}, controller.WithListMode(), controller.WithFormat(args.Format))
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if args.Save == "" {
		return ErrNoReportFile
	}

	file, err := w.LoadReports(args.Save)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.show(ctx, func(ctx context.Context) error {
		return w.DisplayReports(ctx, file.Reports)
	}, controller.WithViewMode(), controller.WithFormat(args.Format))
}

func (w *workflow) show(ctx context.Context, display func(ctx context.Context) error, options ...controller.StartOption) error {
	if err := w.Start(ctx, options...); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}

	defer w.Close(ctx)

	if err := display(ctx); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// collectSources returns the inline patterns followed by the patterns of
// every file, in the order given.
func (w *workflow) collectSources(ctx context.Context, args MutateArgs) ([]m.Source, error) {
	sources := make([]m.Source, 0, len(args.Patterns))
	for _, pattern := range args.Patterns {
		sources = append(sources, m.Source{Pattern: pattern})
	}

	for _, path := range args.Files {
		fileSources, err := w.Read(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read patterns: %w", err)
		}

		sources = append(sources, fileSources...)
	}

	if len(sources) == 0 {
		return nil, ErrNoPatterns
	}

	return sources, nil
}

// mutateSources mutates sources on at most threads workers and returns one
// report per source in input order. A pattern that cannot be mutated gets an
// error report and does not stop the batch.
func (w *workflow) mutateSources(ctx context.Context, sources []m.Source, opts Options, threads int) ([]m.Report, error) {
	reports := make([]m.Report, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			mutants, err := w.Mutagen.Mutate(source.Pattern, opts)
			if err != nil {
				slog.Warn("Pattern could not be mutated", "source", source.String(), "error", err)

				reports[i] = m.Report{Source: source, Error: err.Error()}

				return nil
			}

			reports[i] = m.Report{Source: source, Mutants: mutants}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("Mutated patterns", "patterns", len(sources), "mutants", m.CountMutants(reports), "threads", threads)

	return reports, nil
}
