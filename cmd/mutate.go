package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"regmut.dev/pkg/regmut/internal/controller"
	"regmut.dev/pkg/regmut/internal/domain"
)

var mutateLevelsFlag []int
var mutateMutatorsFlag []string
var mutateFilesFlag []string
var mutateParallelFlag int
var mutateSaveFlag string

const mutateLongDescription = `Generate the mutants of every pattern given as an argument or read from
pattern files (one pattern per line, blank lines and lines starting with #
are skipped, "-" reads standard input).

Mutators can be restricted by name (--mutator, repeatable) and by mutation
level (--level, repeatable). Level 1 holds the most common mutators, level 3
holds all of them.`

// mutateCmd represents the mutate command.
var mutateCmd = newMutateCmd()

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate [patterns...]",
		Short: "Generate mutants of regular expressions",
		Long:  mutateLongDescription,
		Example: `  regmut mutate '^[a-z]+$'
  regmut mutate --level 1 --file patterns.txt
  regmut mutate --format json --save reports.yaml '\d{2,4}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(viper.GetString(mutateFormatKey))
			if err != nil {
				return err
			}

			return workflow.Mutate(cmd.Context(), domain.MutateArgs{
				Patterns: args,
				Files:    mutateFilesFlag,
				Options: selectionOptions(
					viper.GetStringSlice(mutateMutatorsKey),
					viper.GetIntSlice(mutateLevelsKey),
				),
				Threads: parallelism(viper.GetInt(mutateParallelKey)),
				Save:    viper.GetString(mutateSaveKey),
				Format:  format,
			})
		},
	}

	configureMutateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mutateCmd)
}

func configureMutateFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVarP(&mutateLevelsFlag, levelFlagName, "l", nil, "only run mutators of this level (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(levelFlagName), mutateLevelsKey)

	cmd.Flags().StringArrayVarP(&mutateMutatorsFlag, mutatorFlagName, "m", nil, "only run the named mutator (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(mutatorFlagName), mutateMutatorsKey)

	cmd.Flags().IntVarP(&mutateParallelFlag, parallelFlagName, "p", defaultParallel, "number of parallel workers (0 uses one per CPU)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), mutateParallelKey)

	cmd.Flags().StringVarP(&mutateSaveFlag, saveFlagName, "s", defaultSave, "write the reports to this YAML file")
	bindFlagToConfig(cmd.Flags().Lookup(saveFlagName), mutateSaveKey)

	cmd.Flags().StringArrayVar(&mutateFilesFlag, fileFlagName, nil, "read patterns from this file, - for stdin (can be repeated)")
}
