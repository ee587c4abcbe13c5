package employee

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/domain/employee"
)

var form employee.Form

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Добавить сотрудника",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		list, err := app.Employees.Create(cmd.Context(), form)
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		output.Success(cmd.OutOrStdout(), client.OpCreateEmployee)
		list = visible(list)
		return output.Write(cmd.OutOrStdout(), output.FormatTable, list, func(tw *tabwriter.Writer) {
			printEmployees(tw, list)
		})
	},
}

func init() {
	CreateCmd.Flags().StringVar(&form.Name, "name", "", "имя сотрудника")
	CreateCmd.Flags().StringVar(&form.Login, "login", "", "логин для входа")
	CreateCmd.Flags().StringVar(&form.Password, "password", "", "пароль для входа")
}
