package employee

import (
	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/model"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить сотрудника",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		if _, err := app.Employees.List(cmd.Context()); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}
		if _, err := app.Employees.Delete(cmd.Context(), model.NewID(args[0])); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		output.Success(cmd.OutOrStdout(), client.OpDeleteEmployee)
		return nil
	},
}
