package report

import (
	"fmt"

	"FXBridge/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	dailySheet   = "Daily"
	monthlySheet = "Monthly"
)

// RenderXLSX writes a workbook with the daily rows and the monthly averages,
// each sheet carrying a line chart of its rate column.
func RenderXLSX(rows []model.CombinedRow, monthly []model.MonthlyAverage, pair model.Pair, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dailySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", monthlySheet, err)
	}

	label := pair.Label()
	if err := writeDailySheet(f, rows, label); err != nil {
		return err
	}
	if err := writeMonthlySheet(f, monthly, label); err != nil {
		return err
	}

	if len(rows) > 0 {
		last := len(rows) + 1
		if err := f.AddChart(dailySheet, "F2", lineChart(label+" daily rate", label,
			fmt.Sprintf("%s!$A$2:$A$%d", dailySheet, last),
			fmt.Sprintf("%s!$B$2:$B$%d", dailySheet, last))); err != nil {
			return fmt.Errorf("add daily chart: %w", err)
		}
	}
	if len(monthly) > 0 {
		last := len(monthly) + 1
		if err := f.AddChart(monthlySheet, "E2", lineChart(label+" monthly average", label+"_MonthlyAver",
			fmt.Sprintf("%s!$A$2:$A$%d", monthlySheet, last),
			fmt.Sprintf("%s!$B$2:$B$%d", monthlySheet, last))); err != nil {
			return fmt.Errorf("add monthly chart: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file %s: %w", path, err)
	}
	return nil
}

func lineChart(title, series, categories, values string) *excelize.Chart {
	return &excelize.Chart{
		Type:  excelize.Line,
		Title: []excelize.RichTextRun{{Text: title}},
		Series: []excelize.ChartSeries{
			{Name: series, Categories: categories, Values: values},
		},
	}
}

func writeDailySheet(f *excelize.File, rows []model.CombinedRow, label string) error {
	header := []interface{}{"InformationDate", label, label + "_Fill", label + "_MonthlyAver"}
	if err := f.SetSheetRow(dailySheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		r := i + 2
		if err := setCell(f, dailySheet, 1, r, row.Date.Format(model.DateLayout)); err != nil {
			return err
		}
		for col, v := range []model.Value{row.Raw, row.Filled, row.MonthlyAverage} {
			if err := setValue(f, dailySheet, col+2, r, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMonthlySheet(f *excelize.File, monthly []model.MonthlyAverage, label string) error {
	header := []interface{}{"Month", label + "_MonthlyAver", "Days"}
	if err := f.SetSheetRow(monthlySheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, m := range monthly {
		row := []interface{}{m.Month.String(), m.Average, m.Days}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(monthlySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write data at %s: %w", cell, err)
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write data at %s: %w", cell, err)
	}
	return nil
}

// setValue leaves the cell empty for an absent value.
func setValue(f *excelize.File, sheet string, col, row int, v model.Value) error {
	if !v.Valid {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellFloat(sheet, cell, v.Float, -1, 64); err != nil {
		return fmt.Errorf("failed to write data at %s: %w", cell, err)
	}
	return nil
}
