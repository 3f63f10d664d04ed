package naivetime

import (
	"fmt"
	"time"
)

// DateTime is a naive calendar date combined with a time of day.
// Both components are independently valid; there is no combined
// invariant beyond that.
type DateTime struct {
	date Date
	time Time
}

// DateTimeOf combines an already-valid Date and Time.
func DateTimeOf(d Date, t Time) DateTime {
	return DateTime{date: d, time: t}
}

// NewDateTime validates the seven host-facing fields and returns the
// DateTime they name. The date fields are checked first: an invalid
// date short-circuits with [InvalidDateError] before the time fields
// are looked at, and invalid time fields fail with [InvalidTimeError].
func NewDateTime(year, month, day, hour, minute, second, micro int) (DateTime, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := NewTime(hour, minute, second, micro)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}

// Date returns the calendar date component.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time-of-day component.
func (dt DateTime) Time() Time { return dt.time }

// Compare orders two date-times chronologically, returning -1, 0 or +1.
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.date.Compare(o.date); c != 0 {
		return c
	}
	return dt.time.Compare(o.time)
}

// String formats the value as "YYYY-MM-DD HH:MM:SS[.fff]".
func (dt DateTime) String() string {
	return fmt.Sprintf("%s %s", dt.date, dt.time)
}

// DateTimeFromGo converts a time.Time to a naive DateTime,
// discarding the location. The date component clamps years outside
// 32 bits the way [DateFromGo] does.
func DateTimeFromGo(t time.Time) DateTime {
	return DateTime{date: DateFromGo(t), time: TimeFromGo(t)}
}

// ToGo converts a DateTime to a time.Time in UTC. Go times cannot
// represent a leap second, so one flattens to second 59.
func (dt DateTime) ToGo() time.Time {
	return time.Date(
		int(dt.date.year), time.Month(dt.date.month), int(dt.date.day),
		int(dt.time.hour), int(dt.time.minute), int(dt.time.second), int(dt.time.nano),
		time.UTC,
	)
}
