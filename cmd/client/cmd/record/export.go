package record

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
)

var (
	exportFilter filterFlags
	exportPath   string
)

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Выгрузить отфильтрованные обращения в Excel",
	Long: `Сохраняет в .xlsx ровно те записи, которые показывает list с теми же флагами.
Лист называется по заголовку таблицы текущего фильтра статуса.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		criteria, err := exportFilter.criteria()
		if err != nil {
			return err
		}
		view, err := loadView(cmd.Context(), app, criteria)
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		path := exportPath
		if path == "" {
			path = fmt.Sprintf("murojaatlar_%s.xlsx", time.Now().Format("02.01.2006"))
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("ошибка создания файла: %w", err)
		}
		defer f.Close()

		if err := client.ExportXLSX(f, view.Records, criteria.Status.Title()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saqlandi: %s (%d ta)\n", path, len(view.Records))
		return f.Close()
	},
}

func init() {
	exportFilter.register(ExportCmd.Flags())
	ExportCmd.Flags().StringVarP(&exportPath, "out", "o", "", "путь к файлу .xlsx")
}
