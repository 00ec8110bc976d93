package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"estatehub/internal/daterange"
	"estatehub/internal/domain"
)

const (
	pdfFont     = "Helvetica"
	pdfRowH     = 8.0
	pdfLabelW   = 90.0
	pdfValueW   = 90.0
	pdfPageMarg = 15.0
)

var breakdownWidths = []float64{60, 20, 35, 30, 35}

type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument(title string) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfPageMarg, pdfPageMarg, pdfPageMarg)
	pdf.SetAutoPageBreak(true, pdfPageMarg)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 12, d.tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	return d
}

func (d *document) labelValue(label, value string, negative bool) {
	d.pdf.SetFont(pdfFont, "B", 10)
	d.pdf.SetFillColor(0xDD, 0xEB, 0xF7)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(pdfLabelW, pdfRowH, d.tr(label), "1", 0, "L", true, 0, "")

	d.pdf.SetFont(pdfFont, "", 10)
	if negative {
		d.pdf.SetTextColor(0xFF, 0, 0)
	}
	d.pdf.CellFormat(pdfValueW, pdfRowH, d.tr(value), "1", 1, "R", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *document) headerRow(headers []string, widths []float64) {
	d.pdf.SetFont(pdfFont, "B", 10)
	d.pdf.SetFillColor(0x1F, 0x4E, 0x78)
	d.pdf.SetTextColor(0xFF, 0xFF, 0xFF)
	for i, h := range headers {
		d.pdf.CellFormat(widths[i], pdfRowH, d.tr(h), "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *document) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// CommissionPDF renders a commission report and its property breakdown.
func CommissionPDF(report *domain.CommissionReport) ([]byte, error) {
	d := newDocument("Commission Report")
	for _, s := range commissionSummary(report) {
		d.labelValue(s.label, s.value, false)
	}

	d.pdf.Ln(6)
	d.pdf.SetFont(pdfFont, "B", 13)
	d.pdf.CellFormat(0, 10, "Property Breakdown", "", 1, "L", false, 0, "")
	d.headerRow(breakdownHeaders, breakdownWidths)

	d.pdf.SetFont(pdfFont, "", 9)
	if len(report.Properties) == 0 {
		d.pdf.CellFormat(sum(breakdownWidths), pdfRowH, noPropertiesText, "1", 1, "C", false, 0, "")
	}
	for i := range report.Properties {
		for col, v := range breakdownRow(&report.Properties[i]) {
			align := "L"
			if col >= 2 {
				align = "R"
			}
			d.pdf.CellFormat(breakdownWidths[col], pdfRowH, d.tr(v), "1", 0, align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	return d.output()
}

// DailyPDF renders a daily operations report. Negative manual values are red.
func DailyPDF(report *domain.DailyOperationsReport) ([]byte, error) {
	d := newDocument("Daily Operations Report")
	d.labelValue("Operator", report.OperationsName, false)
	d.labelValue("Date", report.ReportDate.Format(daterange.Layout), false)
	d.pdf.Ln(6)

	d.headerRow([]string{"Metric", "Value"}, []float64{pdfLabelW, pdfValueW})
	for _, m := range dailyMetrics(report) {
		d.labelValue(m.label, fmt.Sprint(m.value), m.manual && m.value < 0)
	}
	return d.output()
}

func sum(xs []float64) float64 {
	var t float64
	for _, x := range xs {
		t += x
	}
	return t
}
