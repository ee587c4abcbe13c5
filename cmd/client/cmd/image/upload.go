package image

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/model"
)

var description string

var UploadCmd = &cobra.Command{
	Use:   "upload [record-id] [file]",
	Short: "Прикрепить изображение к обращению",
	Long:  `Файл отправляется в base64. Описание сохраняется только для роли admin.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("ошибка чтения файла: %w", err)
		}

		// текущий список нужен в кэше на случай, если после изменения он не перечитается
		if _, err := app.Images.List(cmd.Context(), model.NewID(args[0])); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		list, err := app.Images.Upload(cmd.Context(), model.NewID(args[0]), data, description)
		if err != nil {
			if list != nil {
				// сервер изменение принял, но список не перечитался
				fmt.Fprintf(cmd.OutOrStdout(), "Oxirgi ma'lum rasmlar soni: %d\n", len(list))
			}
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		output.Success(cmd.OutOrStdout(), client.OpUploadImage)
		fmt.Fprintf(cmd.OutOrStdout(), "Rasmlar soni: %d\n", len(list))
		return nil
	},
}

func init() {
	UploadCmd.Flags().StringVarP(&description, "description", "d", "", "описание изображения")
}
