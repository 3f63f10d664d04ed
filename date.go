package naivetime

import (
	"cmp"
	"fmt"
	"math"
	"time"
)

// Date is a naive proleptic-Gregorian calendar date.
// A Date is always valid: the only way to obtain one with out-of-range
// fields is to bypass [NewDate]. The zero value is January 1 of year 0.
type Date struct {
	year  int32
	month uint8
	day   uint8
}

// daysInMonth holds the length of each month in a non-leap year,
// indexed by month number (index 0 unused).
var daysInMonth = [13]uint8{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year under the
// proleptic-Gregorian 4/100/400 rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return int(daysInMonth[month])
}

// NewDate validates a (year, month, day) triple and returns the Date it
// names. It fails with [InvalidDateError] when the triple is not a real
// proleptic-Gregorian date, or when year does not fit in 32 bits.
func NewDate(year, month, day int) (Date, error) {
	if year < math.MinInt32 || year > math.MaxInt32 {
		return Date{}, NewInvalidDateError(year, month, day)
	}
	if month < 1 || month > 12 {
		return Date{}, NewInvalidDateError(year, month, day)
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, NewInvalidDateError(year, month, day)
	}
	return Date{year: int32(year), month: uint8(month), day: uint8(day)}, nil
}

// Year returns the calendar year. Year 0 exists (proleptic Gregorian)
// and is a leap year.
func (d Date) Year() int { return int(d.year) }

// Month returns the month of the year, 1–12.
func (d Date) Month() int { return int(d.month) }

// Day returns the day of the month, 1–31.
func (d Date) Day() int { return int(d.day) }

// Compare orders two dates chronologically, returning -1, 0 or +1.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.year, o.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, o.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, o.day)
}

// String formats the date as YYYY-MM-DD, with a leading sign for
// negative years and more digits for years beyond 9999.
func (d Date) String() string {
	year, sign := int64(d.year), ""
	if year < 0 {
		sign, year = "-", -year
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, year, d.month, d.day)
}

// DateFromGo converts the date fields of a time.Time to a Date,
// discarding the clock and the location. Go times reach years far
// outside 32 bits; those clamp to the nearest representable date,
// the same truncation policy durations follow.
func DateFromGo(t time.Time) Date {
	year, month, day := t.Date()
	if year > math.MaxInt32 {
		return Date{year: math.MaxInt32, month: 12, day: 31}
	}
	if year < math.MinInt32 {
		return Date{year: math.MinInt32, month: 1, day: 1}
	}
	return Date{year: int32(year), month: uint8(month), day: uint8(day)}
}

// ToGo converts a Date to a time.Time at midnight UTC.
func (d Date) ToGo() time.Time {
	return time.Date(int(d.year), time.Month(d.month), int(d.day), 0, 0, 0, 0, time.UTC)
}
