package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidDateFormat is returned when a date filter is not of the
	// form YYYY-MM.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidMonth is returned when the month part of a date filter
	// is outside 1 through 12.
	ErrInvalidMonth = errors.New("invalid month")
)

var dateFilterRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Month is a calendar month, January through December.
//
// Only the twelve named values are constructible: MonthFromInt rejects
// anything outside 1..12 instead of clamping, so an out-of-range month is
// always a reportable error, never a silent normalization.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthFromInt converts a raw integer to a Month, failing with
// ErrInvalidMonth for anything outside 1 through 12.
func MonthFromInt(v int) (Month, error) {
	if v < January.Int() || v > December.Int() {
		return 0, fmt.Errorf("%w: %d (expected 1 through 12)", ErrInvalidMonth, v)
	}
	return Month(v), nil
}

// Int returns the month's numeric value, 1 for January through 12 for
// December.
func (m Month) Int() int {
	return int(m)
}

// String returns the English month name, or a numeric fallback for
// values that did not come from MonthFromInt.
func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// DateFilter restricts a listing to archives published in one calendar
// month. Immutable once parsed.
type DateFilter struct {
	Year  int
	Month Month
}

// ParseDateFilter parses a "YYYY-MM" string.
//
// The year must be exactly four digits and the month exactly two. A
// string of the wrong shape fails with ErrInvalidDateFormat; a
// well-shaped string whose month is outside 1..12 fails with
// ErrInvalidMonth.
func ParseDateFilter(input string) (DateFilter, error) {
	groups := dateFilterRe.FindStringSubmatch(input)
	if groups == nil {
		return DateFilter{}, fmt.Errorf("%w %q: must be YYYY-MM", ErrInvalidDateFormat, input)
	}

	// Both groups are all-digit by construction, so Atoi cannot fail.
	year, _ := strconv.Atoi(groups[1])
	monthValue, _ := strconv.Atoi(groups[2])

	month, err := MonthFromInt(monthValue)
	if err != nil {
		return DateFilter{}, err
	}

	return DateFilter{Year: year, Month: month}, nil
}

// String renders the filter back in its YYYY-MM source form.
func (d DateFilter) String() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month.Int())
}
