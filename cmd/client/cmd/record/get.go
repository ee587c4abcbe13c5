package record

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/domain/record"
	"murojaat/internal/model"
)

var getFormat string

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть обращение",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		if _, err := app.Records.Load(cmd.Context()); err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}
		rec, ok := app.Records.Get(model.NewID(args[0]))
		if !ok {
			return output.Failure(cmd.ErrOrStderr(), &client.APIError{Op: client.OpLoadRecords, Kind: client.ErrNotFound, Message: "Ma'lumot topilmadi"})
		}

		return output.Write(cmd.OutOrStdout(), types.FormatFrom(cmd.Context(), getFormat), rec, func(tw *tabwriter.Writer) {
			printRecord(tw, rec)
		})
	},
}

func printRecord(tw *tabwriter.Writer, rec record.Record) {
	fmt.Fprintf(tw, "ID:\t%s\n", rec.ID)
	fmt.Fprintf(tw, "Mahalla nomi:\t%s\n", rec.Neighborhood)
	fmt.Fprintf(tw, "Ism familya:\t%s\n", rec.FullName)
	fmt.Fprintf(tw, "Pasport seriyasi:\t%s\n", rec.PassportSeries)
	fmt.Fprintf(tw, "Telefon raqam:\t%s\n", rec.Phone)
	fmt.Fprintf(tw, "Tug'ilgan sanasi:\t%s\n", rec.BirthDate)
	fmt.Fprintf(tw, "Ma'lumoti / mutaxassisligi:\t%s\n", rec.Specialty)
	fmt.Fprintf(tw, "Qiziqishlari:\t%s\n", rec.Interests)
	fmt.Fprintf(tw, "Biriktirilgan xodim:\t%s\n", rec.Assignee)
	fmt.Fprintf(tw, "Amalga oshirgan ishi:\t%s\n", rec.WorkDone)
	fmt.Fprintf(tw, "Holati:\t%s\n", rec.Status)
	fmt.Fprintf(tw, "Sana:\t%s\n", rec.CreatedAt)
}

func init() {
	GetCmd.Flags().StringVarP(&getFormat, "format", "f", "", "формат вывода (table, json, yaml)")
}
