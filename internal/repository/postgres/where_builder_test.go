package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"estatehub/internal/domain"
)

func TestWhereBuilder_Empty(t *testing.T) {
	w := &whereBuilder{}
	assert.Equal(t, "", w.clause())
	assert.Empty(t, w.args)
}

func TestWhereBuilder_Placeholders(t *testing.T) {
	w := &whereBuilder{}
	w.add("a = $%d", 1)
	w.add("b = $%d", "x")
	assert.Equal(t, "WHERE a = $1 AND b = $2", w.clause())
	assert.Equal(t, []interface{}{1, "x"}, w.args)
}

func TestBuildCommissionWhere_RangeWinsOverMonthAndYear(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	month, year := 3, 2023

	w := buildCommissionWhere(domain.CommissionReportFilters{
		StartDate: &start, EndDate: &end, Month: &month, Year: &year,
	})

	assert.Equal(t, "WHERE start_date >= $1 AND end_date <= $2", w.clause())
	assert.Len(t, w.args, 2)
}

func TestBuildCommissionWhere_MonthWithYear(t *testing.T) {
	month, year := 3, 2023
	w := buildCommissionWhere(domain.CommissionReportFilters{Month: &month, Year: &year})
	assert.Equal(t, "WHERE month = $1 AND year = $2", w.clause())
}

func TestBuildCommissionWhere_YearOnly(t *testing.T) {
	year := 2023
	w := buildCommissionWhere(domain.CommissionReportFilters{Year: &year})
	assert.Equal(t, "WHERE year = $1", w.clause())
}

func TestBuildCommissionWhere_EndDateOnly(t *testing.T) {
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	w := buildCommissionWhere(domain.CommissionReportFilters{EndDate: &end})
	assert.Equal(t, "WHERE end_date <= $1", w.clause())
}

func TestBuildDailyWhere_ExactDateAndOperator(t *testing.T) {
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	op := uuid.New()
	month := 5

	w := buildDailyWhere(domain.DailyReportFilters{ReportDate: &day, OperationsID: &op, Month: &month})

	assert.Equal(t, "WHERE report_date = $1::date AND operations_id = $2", w.clause())
	assert.Equal(t, []interface{}{"2024-05-06", op}, w.args)
}

func TestBuildDailyWhere_Range(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	w := buildDailyWhere(domain.DailyReportFilters{StartDate: &start, EndDate: &end})

	assert.Equal(t, "WHERE report_date >= $1::date AND report_date <= $2::date", w.clause())
}

func TestBuildDailyWhere_MonthYear(t *testing.T) {
	month, year := 2, 2024
	w := buildDailyWhere(domain.DailyReportFilters{Month: &month, Year: &year})
	assert.Equal(t, "WHERE EXTRACT(MONTH FROM report_date) = $1 AND EXTRACT(YEAR FROM report_date) = $2", w.clause())
}
