package record

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/model"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить обращение",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		if !deleteYes {
			fmt.Fprint(cmd.OutOrStdout(), "Rostdan ham o'chirmoqchimisiz? [y/N]: ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "ha" {
				return nil
			}
		}

		if _, err := app.Records.Load(cmd.Context()); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}
		if err := app.Records.Delete(cmd.Context(), model.NewID(args[0])); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		output.Success(cmd.OutOrStdout(), client.OpDeleteRecord)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
}
