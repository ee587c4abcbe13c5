package employee

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список сотрудников",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		list, err := app.Employees.List(cmd.Context())
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		list = visible(list)
		return output.Write(cmd.OutOrStdout(), types.FormatFrom(cmd.Context(), listFormat), list, func(tw *tabwriter.Writer) {
			printEmployees(tw, list)
		})
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "", "формат вывода (table, json, yaml)")
}
