package sync

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/domain/record"
)

var byEmployee bool

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Загрузить обращения и справочник сотрудников",
	Long: `Перечитывает с сервера обращения активной роли и, если роль это позволяет,
справочник сотрудников. Показывает итоговые счётчики и время загрузки.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "=== Sinxronizatsiya ===")
		start := time.Now()

		records, err := app.Records.Load(cmd.Context())
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		var names []string
		if app.Role().Directory {
			if _, err := app.Employees.List(cmd.Context()); err != nil {
				return output.Failure(cmd.ErrOrStderr(), err)
			}
			names = app.Employees.Names()
		}

		counts := record.CountStatuses(records)
		fmt.Fprintf(out, "Vaqt: %v\n", time.Since(start).Round(time.Millisecond))
		fmt.Fprintf(out, "Murojaatlar: %d (jarayonda %d, bajarilgan %d)\n", counts.Total, counts.InProgress, counts.Completed)
		if app.Role().Directory {
			fmt.Fprintf(out, "Xodimlar: %d\n", len(names))
		}

		if byEmployee {
			printByEmployee(out, app, names)
		}
		return nil
	},
}

// printByEmployee выводит число обращений на каждого сотрудника справочника
// и отдельно исполнителей, которых в справочнике нет
func printByEmployee(out io.Writer, app *client.App, names []string) {
	perName := make(map[string]int)
	for _, rec := range app.Records.Records() {
		perName[rec.Assignee]++
	}

	for _, name := range names {
		fmt.Fprintf(out, "  %s: %d\n", name, perName[name])
		delete(perName, name)
	}

	rest := make([]string, 0, len(perName))
	for name := range perName {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		label := name
		if label == "" {
			label = "(biriktirilmagan)"
		}
		fmt.Fprintf(out, "  %s: %d *\n", label, perName[name])
	}
}

func init() {
	SyncCmd.Flags().BoolVar(&byEmployee, "by-employee", false, "показать распределение по сотрудникам")
}
