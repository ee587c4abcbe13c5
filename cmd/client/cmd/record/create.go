package record

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
)

var (
	createFields = formFields()
	noPrompt     bool
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Добавить обращение",
	Long: `Создание нового обращения. Все поля обязательны.

Незаданные флагами поля запрашиваются интерактивно. Для роли employee
исполнителем всегда становится вошедший сотрудник.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		prompt := !noPrompt && term.IsTerminal(int(os.Stdin.Fd()))
		skip := map[string]bool{"assignee": app.Role().ForceAssignee}
		draft := buildDraft(createFields, cmd.InOrStdin(), cmd.OutOrStdout(), prompt, skip)

		rec, err := app.Records.Create(cmd.Context(), draft)
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		output.Success(cmd.OutOrStdout(), client.OpCreateRecord)
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", rec.ID)
		return nil
	},
}

func init() {
	registerFields(CreateCmd.Flags(), createFields)
	CreateCmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "не спрашивать недостающие поля")
}
