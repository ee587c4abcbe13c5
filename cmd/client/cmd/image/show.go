package image

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/domain/image"
	"murojaat/internal/model"
)

var showOut string

var ShowCmd = &cobra.Command{
	Use:   "show [record-id] [n]",
	Short: "Показать одно изображение обращения",
	Long: `Выбирает n-е изображение (с 1). Номер за пределами списка прижимается
к первому или последнему изображению. С --out содержимое сохраняется в файл,
иначе печатается data URL.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 2 {
			v, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("номер изображения должен быть числом: %w", err)
			}
			n = v
		}

		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		list, err := app.Images.List(cmd.Context(), model.NewID(args[0]))
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		att, pos, ok := pick(list, n)
		out := cmd.OutOrStdout()
		if !ok {
			fmt.Fprintln(out, "Rasmlar yo'q")
			return nil
		}

		fmt.Fprintf(out, "Rasm %d/%d (ID: %s)\n", pos, len(list), att.ID)
		if att.Description != "" {
			fmt.Fprintf(out, "Tavsif: %s\n", att.Description)
		}

		if showOut == "" {
			fmt.Fprintln(out, att.DataURL())
			return nil
		}

		data, err := att.Bytes()
		if err != nil {
			return fmt.Errorf("изображение %s: %w", att.ID, err)
		}
		if err := os.WriteFile(showOut, data, 0o644); err != nil {
			return fmt.Errorf("ошибка записи файла: %w", err)
		}
		fmt.Fprintf(out, "Saqlandi: %s\n", showOut)
		return nil
	},
}

// pick выбирает изображение по номеру с 1 и возвращает его фактический номер
func pick(list []image.Attachment, n int) (image.Attachment, int, bool) {
	i := image.NewCarousel(len(list)).Select(n - 1)
	if i < 0 {
		return image.Attachment{}, 0, false
	}
	return list[i], i + 1, true
}

func init() {
	ShowCmd.Flags().StringVarP(&showOut, "out", "o", "", "сохранить изображение в файл")
}
