package record

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/domain/record"
)

var statsFormat string

type statsView struct {
	record.Counts `yaml:",inline"`
	Today         string `json:"today" yaml:"today"`
	Month         string `json:"month" yaml:"month"`
	Year          string `json:"year" yaml:"year"`
}

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Карточки дашборда: всего, в работе, выполнено",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		records, err := app.Records.Load(cmd.Context())
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		now := time.Now()
		day, month, year := record.CurrentLabels(now)
		view := statsView{Counts: record.CountStatuses(records), Today: day, Month: month, Year: year}

		return output.Write(cmd.OutOrStdout(), types.FormatFrom(cmd.Context(), statsFormat), view, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "Jami murojaatlar:\t%d\n", view.Total)
			fmt.Fprintf(tw, "Jarayonda:\t%d\n", view.InProgress)
			fmt.Fprintf(tw, "Bajarilgan:\t%d\n", view.Completed)
			fmt.Fprintf(tw, "Joriy kun / oy / yil:\t%s / %s / %s\n", view.Today, view.Month, view.Year)
		})
	},
}

func init() {
	StatsCmd.Flags().StringVarP(&statsFormat, "format", "f", "", "формат вывода (table, json, yaml)")
}
