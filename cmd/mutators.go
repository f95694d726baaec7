package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"regmut.dev/pkg/regmut/internal/controller"
	"regmut.dev/pkg/regmut/internal/domain"
)

var mutatorsLevelsFlag []int

// mutatorsCmd represents the mutators command.
var mutatorsCmd = newMutatorsCmd()

func newMutatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutators",
		Short: "List the available mutators",
		Long:  "List every mutator with its mutation levels and description, optionally restricted to some levels.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := controller.ParseFormat(viper.GetString(mutateFormatKey))
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Levels: selectionOptions(nil, mutatorsLevelsFlag).Levels,
				Format: format,
			})
		},
	}

	cmd.Flags().IntSliceVarP(&mutatorsLevelsFlag, levelFlagName, "l", nil, "only list mutators of this level (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(mutatorsCmd)
}
