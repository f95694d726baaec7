// Package cmd provides the root command and CLI setup for regmut.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"regmut.dev/pkg/regmut/internal/adapter"
	"regmut.dev/pkg/regmut/internal/controller"
	"regmut.dev/pkg/regmut/internal/domain"
)

var patternSource adapter.PatternSource
var reportStore adapter.ReportStore
var mutagen domain.Mutagen
var workflow domain.Workflow
var ui controller.UI

var formatFlag string
var interactiveFlag bool
var verboseFlag bool
var logFileFlag string

const rootLongDescription = `regmut generates mutants of regular expressions: copies of a pattern with
one small change, such as a removed anchor, a negated character class or a
different quantifier. A test suite that still passes against a mutant never
exercises the part of the pattern that changed.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "regmut",
		Short:             "Regular expression mutation tool",
		Long:              rootLongDescription,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", defaultFormat, "output format: table, json or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), mutateFormatKey)

	cmd.PersistentFlags().BoolVarP(&interactiveFlag, interactiveFlagName, "i", defaultInteractive, "browse results in a terminal UI when stdout is a terminal")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(interactiveFlagName), interactiveKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log debug diagnostics")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// setup configures logging and wires the shared dependencies once.
func setup(cmd *cobra.Command, _ []string) error {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	if workflow == nil {
		workflow = newWorkflow(cmd)
	}

	return nil
}

func newWorkflow(cmd *cobra.Command) domain.Workflow {
	useTTY := viper.GetBool(interactiveKey) && controller.IsTTY(cmd.OutOrStdout())

	ui = controller.NewUI(cmd, useTTY)
	patternSource = adapter.NewLocalPatternSource(cmd.InOrStdin())
	reportStore = adapter.NewReportStore()
	mutagen = domain.NewMutagen()

	return domain.NewWorkflow(patternSource, reportStore, ui, mutagen)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
