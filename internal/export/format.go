// Package export renders operations reports as Excel workbooks and PDF documents.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"estatehub/internal/daterange"
	"estatehub/internal/domain"
)

const (
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF   = "application/pdf"

	ExtExcel = "xlsx"
	ExtPDF   = "pdf"
)

var printer = message.NewPrinter(language.English)

// Currency formats d as "$1,234.56"; negatives render as "-$1,234.56".
func Currency(d decimal.Decimal) string {
	d = d.Round(2)
	if d.IsNegative() {
		return "-$" + printer.Sprintf("%.2f", d.Neg().InexactFloat64())
	}
	return "$" + printer.Sprintf("%.2f", d.InexactFloat64())
}

// Percentage formats d as "4.00%".
func Percentage(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	multiUnderscore = regexp.MustCompile(`_+`)
)

// SanitizeFilename replaces anything but letters, digits, dash and underscore
// with underscores, collapses runs, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "unknown"
	}
	return s
}

// CommissionFilename returns commission-report_<start>_to_<end>.<ext>.
func CommissionFilename(report *domain.CommissionReport, ext string) string {
	return fmt.Sprintf("commission-report_%s_to_%s.%s",
		report.StartDate.Format(daterange.Layout), report.EndDate.Format(daterange.Layout), ext)
}

// DailyFilename returns daily-report_<operator>_<date>.<ext>.
func DailyFilename(report *domain.DailyOperationsReport, ext string) string {
	return fmt.Sprintf("daily-report_%s_%s.%s",
		SanitizeFilename(report.OperationsName), report.ReportDate.Format(daterange.Layout), ext)
}

type summaryRow struct {
	label string
	value string
}

func commissionSummary(report *domain.CommissionReport) []summaryRow {
	return []summaryRow{
		{"Period", report.StartDate.Format(daterange.Layout) + " to " + report.EndDate.Format(daterange.Layout)},
		{"Commission Percentage", Percentage(report.CommissionPercentage)},
		{"Total Properties", fmt.Sprint(report.TotalPropertiesCount)},
		{"Sales Count", fmt.Sprint(report.TotalSalesCount)},
		{"Rent Count", fmt.Sprint(report.TotalRentCount)},
		{"Total Sales Value", Currency(report.TotalSalesValue)},
		{"Total Rent Value", Currency(report.TotalRentValue)},
		{"Total Commission", Currency(report.TotalCommissionAmount)},
	}
}

var breakdownHeaders = []string{"Title", "Type", "Price", "Closed Date", "Commission"}

func breakdownRow(p *domain.CommissionProperty) []string {
	return []string{
		p.Title,
		cases.Title(language.English).String(p.PropertyType),
		Currency(p.Price),
		p.ClosedDate.Format(daterange.Layout),
		Currency(p.Commission),
	}
}

const noPropertiesText = "No closed properties in this period"

type metricRow struct {
	label  string
	value  int
	manual bool
}

// dailyMetrics lists the daily counters in display order. Leads responded to
// is shown net of out-of-duty responses.
func dailyMetrics(report *domain.DailyOperationsReport) []metricRow {
	return []metricRow{
		{"Properties Added", report.PropertiesAdded, false},
		{"Leads Responded To", report.EffectiveLeadsResponded(), false},
		{"Amending Previous Properties", report.AmendingPreviousProperties, false},
		{"Preparing Contract", report.PreparingContract, true},
		{"Tasks Efficiency (Duty Time)", report.TasksEfficiencyDutyTime, true},
		{"Tasks Efficiency (Uniform)", report.TasksEfficiencyUniform, true},
		{"Tasks Efficiency (After Duty)", report.TasksEfficiencyAfterDuty, true},
		{"Leads Responded Out of Duty Time", report.LeadsRespondedOutOfDutyTime, true},
	}
}
