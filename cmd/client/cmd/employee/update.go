package employee

import (
	"errors"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/domain/employee"
	"murojaat/internal/model"
)

var updateName, updateLogin, updatePassword string

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Изменить сотрудника",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		var patch employee.Patch
		if cmd.Flags().Changed("name") {
			patch.Name = &updateName
		}
		if cmd.Flags().Changed("login") {
			patch.Login = &updateLogin
		}
		if cmd.Flags().Changed("password") {
			patch.Password = &updatePassword
		}
		if patch.IsEmpty() {
			return errors.New("не задано ни одного поля для изменения")
		}

		if _, err := app.Employees.List(cmd.Context()); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}
		if _, err := app.Employees.Update(cmd.Context(), model.NewID(args[0]), patch); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		output.Success(cmd.OutOrStdout(), client.OpUpdateEmployee)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateName, "name", "", "новое имя")
	UpdateCmd.Flags().StringVar(&updateLogin, "login", "", "новый логин")
	UpdateCmd.Flags().StringVar(&updatePassword, "password", "", "новый пароль")
}
