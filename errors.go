package naivetime

import (
	"errors"
	"fmt"
)

// InvalidDateError signals that a (year, month, day) triple does not
// name a real proleptic-Gregorian calendar date.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %04d-%02d-%02d", e.Year, e.Month, e.Day)
}

// NewInvalidDateError creates a new InvalidDateError.
func NewInvalidDateError(year, month, day int) *InvalidDateError {
	return &InvalidDateError{Year: year, Month: month, Day: day}
}

// IsInvalidDate checks whether an error is an InvalidDateError and returns it.
func IsInvalidDate(err error) (*InvalidDateError, bool) {
	var d *InvalidDateError
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// InvalidTimeError signals that time-of-day fields fall outside their
// valid ranges. Nanosecond holds the sub-second part as constructed,
// even when it is the field that was out of range.
type InvalidTimeError struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time %02d:%02d:%02d +%dns", e.Hour, e.Minute, e.Second, e.Nanosecond)
}

// NewInvalidTimeError creates a new InvalidTimeError.
func NewInvalidTimeError(hour, minute, second, nano int) *InvalidTimeError {
	return &InvalidTimeError{Hour: hour, Minute: minute, Second: second, Nanosecond: nano}
}

// IsInvalidTime checks whether an error is an InvalidTimeError and returns it.
func IsInvalidTime(err error) (*InvalidTimeError, bool) {
	var t *InvalidTimeError
	if errors.As(err, &t) {
		return t, true
	}
	return nil, false
}
