package image

import (
	"fmt"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/model"
)

var ownerRecord string

var DeleteCmd = &cobra.Command{
	Use:   "delete [image-id]",
	Short: "Удалить изображение",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		// текущий список нужен в кэше на случай, если после изменения он не перечитается
		if _, err := app.Images.List(cmd.Context(), model.NewID(ownerRecord)); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		list, err := app.Images.Delete(cmd.Context(), model.NewID(args[0]), model.NewID(ownerRecord))
		if err != nil {
			if list != nil {
				// сервер изменение принял, но список не перечитался
				fmt.Fprintf(cmd.OutOrStdout(), "Oxirgi ma'lum rasmlar soni: %d\n", len(list))
			}
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		output.Success(cmd.OutOrStdout(), client.OpDeleteImage)
		fmt.Fprintf(cmd.OutOrStdout(), "Rasmlar soni: %d\n", len(list))
		return nil
	},
}

func init() {
	DeleteCmd.Flags().StringVarP(&ownerRecord, "record", "r", "", "обращение, которому принадлежит изображение")
	_ = DeleteCmd.MarkFlagRequired("record")
}
