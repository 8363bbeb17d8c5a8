package services

import (
	"io"

	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Арыздар"

var exportColumns = []struct {
	title string
	width float64
}{
	{"№", 4},
	{"Дата", 16},
	{"АИА", 24},
	{"Телефон", 16},
	{"Шаар", 14},
	{"График", 22},
	{"Тажрыйба", 20},
	{"Багыт", 22},
	{"Айлык", 18},
	{"Башталуу", 16},
	{"Тилдер", 30},
	{"Өзү жөнүндө", 28},
	{"Булак", 35},
}

// XLSXWriter builds single-sheet workbooks with excelize.
type XLSXWriter struct{}

func (XLSXWriter) Write(w io.Writer, apps []models.Application) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(exportColumns))
	for i, c := range exportColumns {
		header[i] = c.title
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(exportSheet, col, col, c.width); err != nil {
			return err
		}
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1855C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err := f.SetCellStyle(exportSheet, "A1", last, style); err != nil {
		return err
	}
	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	for i, a := range apps {
		row := []interface{}{
			i + 1, a.Timestamp, a.Name, a.Phone, a.City, a.Schedule, a.Experience,
			a.SalesType, a.Salary, a.StartDate, a.Languages, a.About, a.Source,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "row %d", i+1)
		}
	}

	return f.Write(w)
}
