package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из активной роли",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.Logout(); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Сессия %s завершена\n", app.Role().Name)
		return nil
	},
}
