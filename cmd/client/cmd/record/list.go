package record

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/domain/record"
)

var (
	listFilter filterFlags
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список обращений",
	Long: `Загружает обращения активной роли и применяет фильтр дашборда.

Явный диапазон --from/--to перекрывает --period. Счётчики в шапке
всегда считаются по всем загруженным записям.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		criteria, err := listFilter.criteria()
		if err != nil {
			return err
		}

		view, err := loadView(cmd.Context(), app, criteria)
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		return output.Write(cmd.OutOrStdout(), types.FormatFrom(cmd.Context(), listFormat), view, func(tw *tabwriter.Writer) {
			printRecordsTable(tw, criteria, view)
		})
	},
}

func loadView(ctx context.Context, app *client.App, c record.Criteria) (record.View, error) {
	if _, err := app.Records.Load(ctx); err != nil {
		return record.View{}, err
	}
	return app.Records.View(c, time.Now()), nil
}

func printRecordsTable(tw *tabwriter.Writer, c record.Criteria, view record.View) {
	fmt.Fprintf(tw, "%s\tJami: %d\tJarayonda: %d\tBajarilgan: %d\n",
		c.Status.Title(), view.Counts.Total, view.Counts.InProgress, view.Counts.Completed)

	if len(view.Records) == 0 {
		fmt.Fprintln(tw, "Ma'lumot topilmadi")
		return
	}

	fmt.Fprintln(tw, "№\tID\tIsm familya\tMahalla\tTelefon\tXodim\tHolati\tSana")
	for i, rec := range view.Records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			rec.ID,
			output.Truncate(rec.FullName, 30),
			output.Truncate(rec.Neighborhood, 20),
			rec.Phone,
			rec.Assignee,
			rec.Status,
			rec.CreatedAt,
		)
	}
}

func init() {
	listFilter.register(ListCmd.Flags())
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "", "формат вывода (table, json, yaml)")
}
