package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"regmut.dev/pkg/regmut/internal/controller"
	"regmut.dev/pkg/regmut/internal/domain"
)

var viewSaveFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved mutant reports",
		Long:  "View the mutant reports written by mutate --save. Defaults to the mutate.save path from the config.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := controller.ParseFormat(viper.GetString(mutateFormatKey))
			if err != nil {
				return err
			}

			path := viewSaveFlag
			if path == "" {
				path = viper.GetString(mutateSaveKey)
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Save: path, Format: format})
		},
	}

	cmd.Flags().StringVarP(&viewSaveFlag, saveFlagName, "s", "", "report file to read")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
