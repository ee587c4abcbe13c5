package client

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"murojaat/internal/domain/record"
)

var exportHeader = []any{
	"№", "Mahalla nomi", "Ism familya", "Pasport seriyasi", "Telefon raqam",
	"Tug'ilgan sanasi", "Ma'lumoti / mutaxassisligi", "Qiziqishlari",
	"Biriktirilgan xodim", "Amalga oshirgan ishi", "Holati", "Sana",
}

// ExportXLSX пишет записи в книгу Excel с одним листом. Имя листа - заголовок таблицы.
func ExportXLSX(w io.Writer, records []record.Record, title string) error {
	if title == "" {
		title = record.StatusAll.Title()
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", title); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(title, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	if err := f.SetRowStyle(title, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, rec := range records {
		row := []any{
			i + 1, rec.Neighborhood, rec.FullName, rec.PassportSeries, rec.Phone,
			rec.BirthDate, rec.Specialty, rec.Interests, rec.Assignee, rec.WorkDone,
			statusLabel(rec.Status), rec.CreatedAt,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(title, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(title, "B", "L", 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func statusLabel(s record.Status) string {
	if s.Known() {
		return s.DisplayName()
	}
	return string(s)
}
