// Package daterange converts caller-supplied date-like values into UTC day
// boundaries used by the operations reports.
//
// The calendar day is taken from the parsed value in whatever location it
// resolved to and then pinned to UTC. Callers should pass unambiguous dates
// (YYYY-MM-DD) to avoid a timezone offset shifting the day.
package daterange

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"

	"estatehub/internal/domain"
)

// Layout is the canonical string form of a report day.
const Layout = "2006-01-02"

// Range is a normalized inclusive date range.
type Range struct {
	StartUTC time.Time
	EndUTC   time.Time
	StartStr string
	EndStr   string
}

// Day is a normalized single report day.
type Day struct {
	StartUTC time.Time
	EndUTC   time.Time
	Str      string
}

// Normalize parses start and end and returns the UTC day-boundary range.
func Normalize(start, end any) (Range, error) {
	s, err := parse(start)
	if err != nil {
		return Range{}, fmt.Errorf("start date: %w", err)
	}
	e, err := parse(end)
	if err != nil {
		return Range{}, fmt.Errorf("end date: %w", err)
	}

	startUTC := startOfDay(s)
	endUTC := endOfDay(e)
	if endUTC.Before(startUTC) {
		return Range{}, domain.ErrInvalidDateRange
	}

	return Range{
		StartUTC: startUTC,
		EndUTC:   endUTC,
		StartStr: startUTC.Format(Layout),
		EndStr:   endUTC.Format(Layout),
	}, nil
}

// NormalizeDay parses a single date-like value into its UTC day boundaries.
func NormalizeDay(v any) (Day, error) {
	t, err := parse(v)
	if err != nil {
		return Day{}, err
	}
	start := startOfDay(t)
	return Day{
		StartUTC: start,
		EndUTC:   endOfDay(t),
		Str:      start.Format(Layout),
	}, nil
}

// Contains reports whether t falls inside the range, inclusive.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.StartUTC) && !t.After(r.EndUTC)
}

// Month and Year are derived from the UTC start date.
func (r Range) Month() int { return int(r.StartUTC.Month()) }

func (r Range) Year() int { return r.StartUTC.Year() }

func parse(v any) (time.Time, error) {
	if v == nil {
		return time.Time{}, domain.ErrInvalidDateFormat
	}
	switch x := v.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return time.Time{}, domain.ErrInvalidDateFormat
		}
		v = strings.TrimSpace(x)
	case *time.Time:
		if x == nil {
			return time.Time{}, domain.ErrInvalidDateFormat
		}
		v = *x
	}

	t, err := cast.ToTimeE(v)
	if err != nil || t.IsZero() {
		return time.Time{}, domain.ErrInvalidDateFormat
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
