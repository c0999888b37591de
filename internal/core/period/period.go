// Package period locates the reporting window for an insight query.
// A reporting period is a (year, month) pair with no day component; it is
// derived from the dates present in the queried scope and never stored.
package period

import (
	"fmt"
	"strings"
	"time"
)

// monthNames holds the twelve canonical English month names, indexed by
// time.Month-1. Requested months must match one of these (case-insensitive).
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// InvalidMonthError reports a requested month name that is not one of the
// twelve recognized English names.
type InvalidMonthError struct {
	Name string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("Invalid month name '%s'. Use full names (e.g., 'January').", e.Name)
}

// ErrNoDates is returned by Resolve when the scope has no usable dates.
var ErrNoDates = fmt.Errorf("no dates in scope")

// Period is a (year, month) reporting window.
type Period struct {
	Year  int
	Month time.Month
}

// MonthFromName maps a full English month name to its time.Month,
// case-insensitively. Abbreviations are rejected.
func MonthFromName(name string) (time.Month, error) {
	for i, m := range monthNames {
		if strings.EqualFold(name, m) {
			return time.Month(i + 1), nil
		}
	}
	return 0, &InvalidMonthError{Name: name}
}

// MonthName returns the canonical English name of the period's month.
func (p Period) MonthName() string {
	return monthNames[p.Month-1]
}

// Label renders the period as "January 2024" for placeholder messages.
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.MonthName(), p.Year)
}

// Prior returns the same month one calendar year earlier. The month is
// unchanged, so no boundary renormalization can occur.
func (p Period) Prior() Period {
	return Period{Year: p.Year - 1, Month: p.Month}
}

// Contains reports whether t falls inside the period. Time-of-day is
// ignored beyond date granularity.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Resolve determines the reporting period for a scope.
//
// With an explicit requestedMonth, the resolved year is the maximum year
// present across all dates, NOT the latest year in which that month has
// rows. A real month can therefore resolve to a window with zero rows;
// callers render that as an absent period. Kept on purpose, see DESIGN.md.
//
// With no requestedMonth, the period is taken from the single maximum date.
//
// Returns ErrNoDates when dates is empty.
func Resolve(dates []time.Time, requestedMonth string) (Period, error) {
	if requestedMonth != "" {
		month, err := MonthFromName(requestedMonth)
		if err != nil {
			return Period{}, err
		}
		maxYear, ok := maxYearOf(dates)
		if !ok {
			return Period{}, ErrNoDates
		}
		return Period{Year: maxYear, Month: month}, nil
	}

	latest, ok := maxDateOf(dates)
	if !ok {
		return Period{}, ErrNoDates
	}
	return Period{Year: latest.Year(), Month: latest.Month()}, nil
}

func maxYearOf(dates []time.Time) (int, bool) {
	if len(dates) == 0 {
		return 0, false
	}
	year := dates[0].Year()
	for _, d := range dates[1:] {
		if d.Year() > year {
			year = d.Year()
		}
	}
	return year, true
}

func maxDateOf(dates []time.Time) (time.Time, bool) {
	if len(dates) == 0 {
		return time.Time{}, false
	}
	latest := dates[0]
	for _, d := range dates[1:] {
		if d.After(latest) {
			latest = d
		}
	}
	return latest, true
}
