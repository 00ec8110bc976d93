package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"estatehub/internal/daterange"
	"estatehub/internal/domain"
)

const (
	commissionSheet = "Commission Report"
	dailySheet      = "Daily Report"

	headerFill = "1F4E78"
	bandFill   = "DDEBF7"
	negativeFG = "FF0000"
)

type workbook struct {
	f        *excelize.File
	sheet    string
	title    int
	header   int
	label    int
	negative int
}

func newWorkbook(sheet string) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	wb := &workbook{f: f, sheet: sheet}
	styles := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&wb.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{&wb.header, &excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		}},
		{&wb.label, &excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{bandFill}},
		}},
		{&wb.negative, &excelize.Style{Font: &excelize.Font{Color: negativeFG}}},
	}
	for _, s := range styles {
		id, err := f.NewStyle(s.style)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("creating style: %w", err)
		}
		*s.dst = id
	}
	return wb, nil
}

func (wb *workbook) set(col, row int, value interface{}, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := wb.f.SetCellValue(wb.sheet, cell, value); err != nil {
		return err
	}
	if style == 0 {
		return nil
	}
	return wb.f.SetCellStyle(wb.sheet, cell, cell, style)
}

func (wb *workbook) bytes() ([]byte, error) {
	defer wb.f.Close()
	buf, err := wb.f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// CommissionExcel renders a commission report and its property breakdown.
func CommissionExcel(report *domain.CommissionReport) ([]byte, error) {
	wb, err := newWorkbook(commissionSheet)
	if err != nil {
		return nil, err
	}
	if err := writeCommission(wb, report); err != nil {
		wb.f.Close()
		return nil, fmt.Errorf("rendering commission workbook: %w", err)
	}
	return wb.bytes()
}

func writeCommission(wb *workbook, report *domain.CommissionReport) error {
	if err := wb.set(1, 1, "Commission Report", wb.title); err != nil {
		return err
	}

	row := 3
	for _, s := range commissionSummary(report) {
		if err := wb.set(1, row, s.label, wb.label); err != nil {
			return err
		}
		if err := wb.set(2, row, s.value, 0); err != nil {
			return err
		}
		row++
	}

	row++
	if err := wb.set(1, row, "Property Breakdown", wb.title); err != nil {
		return err
	}
	row++
	for i, h := range breakdownHeaders {
		if err := wb.set(i+1, row, h, wb.header); err != nil {
			return err
		}
	}
	row++

	if len(report.Properties) == 0 {
		if err := wb.set(1, row, noPropertiesText, 0); err != nil {
			return err
		}
	}
	for i := range report.Properties {
		for col, v := range breakdownRow(&report.Properties[i]) {
			if err := wb.set(col+1, row, v, 0); err != nil {
				return err
			}
		}
		row++
	}

	if err := wb.f.SetColWidth(wb.sheet, "A", "A", 34); err != nil {
		return err
	}
	return wb.f.SetColWidth(wb.sheet, "B", "E", 20)
}

// DailyExcel renders a daily operations report. Negative manual values are red.
func DailyExcel(report *domain.DailyOperationsReport) ([]byte, error) {
	wb, err := newWorkbook(dailySheet)
	if err != nil {
		return nil, err
	}
	if err := writeDaily(wb, report); err != nil {
		wb.f.Close()
		return nil, fmt.Errorf("rendering daily workbook: %w", err)
	}
	return wb.bytes()
}

func writeDaily(wb *workbook, report *domain.DailyOperationsReport) error {
	if err := wb.set(1, 1, "Daily Operations Report", wb.title); err != nil {
		return err
	}
	header := []summaryRow{
		{"Operator", report.OperationsName},
		{"Date", report.ReportDate.Format(daterange.Layout)},
	}
	row := 3
	for _, h := range header {
		if err := wb.set(1, row, h.label, wb.label); err != nil {
			return err
		}
		if err := wb.set(2, row, h.value, 0); err != nil {
			return err
		}
		row++
	}

	row++
	if err := wb.set(1, row, "Metric", wb.header); err != nil {
		return err
	}
	if err := wb.set(2, row, "Value", wb.header); err != nil {
		return err
	}
	row++

	for _, m := range dailyMetrics(report) {
		style := 0
		if m.manual && m.value < 0 {
			style = wb.negative
		}
		if err := wb.set(1, row, m.label, wb.label); err != nil {
			return err
		}
		if err := wb.set(2, row, m.value, style); err != nil {
			return err
		}
		row++
	}

	if err := wb.f.SetColWidth(wb.sheet, "A", "A", 36); err != nil {
		return err
	}
	return wb.f.SetColWidth(wb.sheet, "B", "B", 24)
}
