package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estatehub/internal/daterange"
	"estatehub/internal/domain"
)

// queryDate reads the first non-empty of keys as a report day.
func queryDate(c *gin.Context, keys ...string) (*time.Time, error) {
	for _, key := range keys {
		v := c.Query(key)
		if v == "" {
			continue
		}
		day, err := daterange.NormalizeDay(v)
		if err != nil {
			return nil, fmt.Errorf("invalid '%s': must be YYYY-MM-DD", key)
		}
		return &day.StartUTC, nil
	}
	return nil, nil
}

func queryInt(c *gin.Context, key string, lo, hi int) (*int, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		return nil, fmt.Errorf("invalid '%s': must be an integer between %d and %d", key, lo, hi)
	}
	return &n, nil
}

// parseCommissionFilters reads start_date/end_date (aliases date_from/date_to),
// month and year.
func parseCommissionFilters(c *gin.Context) (domain.CommissionReportFilters, error) {
	var (
		f   domain.CommissionReportFilters
		err error
	)
	if f.StartDate, err = queryDate(c, "start_date", "date_from"); err != nil {
		return f, err
	}
	if f.EndDate, err = queryDate(c, "end_date", "date_to"); err != nil {
		return f, err
	}
	if f.Month, err = queryInt(c, "month", 1, 12); err != nil {
		return f, err
	}
	if f.Year, err = queryInt(c, "year", 1900, 9999); err != nil {
		return f, err
	}
	return f, nil
}

// parseDailyFilters reads report_date, start_date/end_date (aliases
// date_from/date_to), month, year and operations_id.
func parseDailyFilters(c *gin.Context) (domain.DailyReportFilters, error) {
	var (
		f   domain.DailyReportFilters
		err error
	)
	if f.ReportDate, err = queryDate(c, "report_date", "date"); err != nil {
		return f, err
	}
	if f.StartDate, err = queryDate(c, "start_date", "date_from"); err != nil {
		return f, err
	}
	if f.EndDate, err = queryDate(c, "end_date", "date_to"); err != nil {
		return f, err
	}
	if f.Month, err = queryInt(c, "month", 1, 12); err != nil {
		return f, err
	}
	if f.Year, err = queryInt(c, "year", 1900, 9999); err != nil {
		return f, err
	}
	if v := c.Query("operations_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, fmt.Errorf("invalid 'operations_id': must be a valid UUID")
		}
		f.OperationsID = &id
	}
	return f, nil
}

// parsePagination reads offset and limit, clamping limit to 1..100.
func parsePagination(c *gin.Context, defaultLimit int) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
