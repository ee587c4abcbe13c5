package auth

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/domain/session"
)

var statusFormat string

type statusView struct {
	Role          string   `json:"role" yaml:"role"`
	Authenticated bool     `json:"authenticated" yaml:"authenticated"`
	User          string   `json:"user,omitempty" yaml:"user,omitempty"`
	StoredKeys    []string `json:"stored_keys" yaml:"stored_keys"`
}

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние сессии активной роли",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		view := statusView{Role: app.Role().Name.String()}

		sess, err := app.Session()
		switch {
		case err == nil:
			view.Authenticated = true
			if sess.Identity != nil {
				view.User = sess.Identity.DisplayName()
			}
		case errors.Is(err, session.ErrUnauthenticated):
		default:
			return err
		}

		view.StoredKeys, err = app.StoredKeys()
		if err != nil {
			return err
		}

		return output.Write(cmd.OutOrStdout(), types.FormatFrom(cmd.Context(), statusFormat), view, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "Роль:\t%s\n", view.Role)
			fmt.Fprintf(tw, "Вход выполнен:\t%t\n", view.Authenticated)
			if view.User != "" {
				fmt.Fprintf(tw, "Пользователь:\t%s\n", view.User)
			}
			fmt.Fprintf(tw, "Ключи в хранилище:\t%v\n", view.StoredKeys)
		})
	},
}

func init() {
	StatusCmd.Flags().StringVarP(&statusFormat, "format", "f", "", "формат вывода (table, json, yaml)")
}
