package record

import (
	"errors"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/domain/record"
	"murojaat/internal/model"
)

var (
	updateFields = formFields()
	updateStatus string
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Изменить обращение",
	Long: `Меняет только переданные флагами поля, остальные берутся из текущей записи.

Пример смены статуса: murojaat record update 12 --status bajarilgan`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		patch := buildPatch(cmd.Flags(), updateFields)
		if cmd.Flags().Changed("status") {
			st := record.Status(updateStatus)
			if err := st.Validate(); err != nil {
				return err
			}
			patch.Status = &st
		}
		if patch.IsEmpty() {
			return errors.New("не задано ни одного поля для изменения")
		}

		if _, err := app.Records.Load(cmd.Context()); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}
		if _, err := app.Records.Update(cmd.Context(), model.NewID(args[0]), patch); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		output.Success(cmd.OutOrStdout(), client.OpUpdateRecord)
		return nil
	},
}

func init() {
	registerFields(UpdateCmd.Flags(), updateFields)
	UpdateCmd.Flags().StringVar(&updateStatus, "status", "", "статус: jarayonda, bajarilgan")
}
