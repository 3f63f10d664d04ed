package naivetime

import (
	"cmp"
	"fmt"
	"time"
)

// Time is a naive wall-clock time of day with nanosecond precision and
// leap-second support. The zero value is midnight.
//
// A leap second (the 61st second of a minute) is stored as second 59
// plus a flag, and surfaces as second 60 through [Time.Second] so that
// callers can detect it. Any sub-second value may accompany a leap
// second; a partial leap second such as 23:59:60.5 is valid.
type Time struct {
	hour   uint8
	minute uint8
	second uint8 // 0–59; a leap second is second 59 with leap set
	nano   uint32
	leap   bool
}

// NewTime validates time-of-day fields at microsecond precision.
// A second value of 60 marks a leap second. It fails with
// [InvalidTimeError] when hour, minute, second or micro is out of range.
func NewTime(hour, minute, second, micro int) (Time, error) {
	if micro < 0 || micro > 999_999 {
		return Time{}, NewInvalidTimeError(hour, minute, second, micro*1000)
	}
	return NewTimeNano(hour, minute, second, micro*1000)
}

// NewTimeNano is [NewTime] at the full nanosecond precision of the
// systems model; nano must be in [0, 999999999].
func NewTimeNano(hour, minute, second, nano int) (Time, error) {
	if hour < 0 || hour > 23 ||
		minute < 0 || minute > 59 ||
		second < 0 || second > 60 ||
		nano < 0 || nano > 999_999_999 {
		return Time{}, NewInvalidTimeError(hour, minute, second, nano)
	}
	t := Time{hour: uint8(hour), minute: uint8(minute), second: uint8(second), nano: uint32(nano)}
	if second == 60 {
		t.second = 59
		t.leap = true
	}
	return t, nil
}

// Hour returns the hour of the day, 0–23.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute of the hour, 0–59.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second of the minute, 0–60.
// 60 is reported during a leap second.
func (t Time) Second() int {
	if t.leap {
		return 60
	}
	return int(t.second)
}

// Nanosecond returns the sub-second part in nanoseconds, 0–999999999.
func (t Time) Nanosecond() int { return int(t.nano) }

// Microsecond returns the sub-second part in microseconds, truncating
// any finer resolution.
func (t Time) Microsecond() int { return int(t.nano / 1000) }

// IsLeapSecond reports whether this time falls inside a leap second.
func (t Time) IsLeapSecond() bool { return t.leap }

// Compare orders two times chronologically, returning -1, 0 or +1.
// A leap second orders after second 59 of the same minute.
func (t Time) Compare(o Time) int {
	if c := cmp.Compare(t.hour, o.hour); c != 0 {
		return c
	}
	if c := cmp.Compare(t.minute, o.minute); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Second(), o.Second()); c != 0 {
		return c
	}
	return cmp.Compare(t.nano, o.nano)
}

// String formats the time as HH:MM:SS with an optional fractional part,
// printing second 60 during a leap second.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d%s", t.hour, t.minute, t.Second(), fracString(t.nano))
}

// fracString renders a sub-second fraction with 3, 6 or 9 digits,
// or nothing when it is zero.
func fracString(nano uint32) string {
	switch {
	case nano == 0:
		return ""
	case nano%1_000_000 == 0:
		return fmt.Sprintf(".%03d", nano/1_000_000)
	case nano%1_000 == 0:
		return fmt.Sprintf(".%06d", nano/1_000)
	default:
		return fmt.Sprintf(".%09d", nano)
	}
}

// TimeFromGo converts the clock fields of a time.Time to a Time,
// discarding the date and the location. Go times never carry a leap
// second, so the result never does either.
func TimeFromGo(t time.Time) Time {
	hour, minute, second := t.Clock()
	return Time{
		hour:   uint8(hour),
		minute: uint8(minute),
		second: uint8(second),
		nano:   uint32(t.Nanosecond()),
	}
}
