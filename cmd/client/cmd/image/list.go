package image

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/domain/image"
	"murojaat/internal/model"
)

var (
	listFormat string
	saveDir    string
)

type imageRow struct {
	ID          model.ID `json:"id" yaml:"id"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Bytes       int      `json:"bytes" yaml:"bytes"`
	File        string   `json:"file,omitempty" yaml:"file,omitempty"`
}

var ListCmd = &cobra.Command{
	Use:   "list [record-id]",
	Short: "Изображения обращения",
	Long:  `Список изображений обращения. С --save файлы сохраняются в каталог как <id>.jpg.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		list, err := app.Images.List(cmd.Context(), model.NewID(args[0]))
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		rows := make([]imageRow, 0, len(list))
		for _, att := range list {
			row, err := toRow(att)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}

		return output.Write(cmd.OutOrStdout(), types.FormatFrom(cmd.Context(), listFormat), rows, func(tw *tabwriter.Writer) {
			if len(rows) == 0 {
				fmt.Fprintln(tw, "Rasmlar yo'q")
				return
			}
			fmt.Fprintln(tw, "ID\tTavsif\tHajmi\tFayl")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.ID, output.Truncate(r.Description, 40), r.Bytes, r.File)
			}
		})
	},
}

func toRow(att image.Attachment) (imageRow, error) {
	data, err := att.Bytes()
	if err != nil {
		return imageRow{}, fmt.Errorf("изображение %s: %w", att.ID, err)
	}
	row := imageRow{ID: att.ID, Description: att.Description, Bytes: len(data)}

	if saveDir == "" {
		return row, nil
	}
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return imageRow{}, err
	}
	row.File = filepath.Join(saveDir, att.ID.String()+".jpg")
	if err := os.WriteFile(row.File, data, 0o644); err != nil {
		return imageRow{}, fmt.Errorf("ошибка записи файла: %w", err)
	}
	return row, nil
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "", "формат вывода (table, json, yaml)")
	ListCmd.Flags().StringVar(&saveDir, "save", "", "сохранить изображения в каталог")
}
