// Package wire defines the host-facing structured representations of
// the naivetime value types.
//
// These are plain Go structs with cramberry struct tags for
// deterministic binary serialization. Decoding runs through the same
// validating constructors as direct field construction, so an invalid
// or out-of-range payload behaves exactly like invalid or out-of-range
// fields: dates and times fail, deltas clamp. The structs carry the
// host model's microsecond precision; a [naivetime.Time] holding finer
// resolution loses the sub-microsecond part on encode.
package wire

import "github.com/blockberries/naivetime"

// Date is the wire form of a calendar date.
type Date struct {
	Year  int32 `cramberry:"1"`
	Month uint8 `cramberry:"2"`
	Day   uint8 `cramberry:"3"`
}

// FromDate converts a naivetime.Date to its wire form.
func FromDate(d naivetime.Date) Date {
	return Date{Year: int32(d.Year()), Month: uint8(d.Month()), Day: uint8(d.Day())}
}

// ToDate validates the wire fields and returns the date they name.
func (d Date) ToDate() (naivetime.Date, error) {
	return naivetime.NewDate(int(d.Year), int(d.Month), int(d.Day))
}

// Time is the wire form of a time of day. Second ranges 0–60:
// 60 marks a leap second, mirroring the in-memory encoding.
type Time struct {
	Hour   uint8  `cramberry:"1"`
	Minute uint8  `cramberry:"2"`
	Second uint8  `cramberry:"3"`
	Micro  uint32 `cramberry:"4"`
}

// FromTime converts a naivetime.Time to its wire form, truncating
// sub-microsecond resolution.
func FromTime(t naivetime.Time) Time {
	return Time{
		Hour:   uint8(t.Hour()),
		Minute: uint8(t.Minute()),
		Second: uint8(t.Second()),
		Micro:  uint32(t.Microsecond()),
	}
}

// ToTime validates the wire fields and returns the time they name.
func (t Time) ToTime() (naivetime.Time, error) {
	return naivetime.NewTime(int(t.Hour), int(t.Minute), int(t.Second), int(t.Micro))
}

// DateTime is the wire form of a combined date and time of day.
type DateTime struct {
	Date Date `cramberry:"1"`
	Time Time `cramberry:"2"`
}

// FromDateTime converts a naivetime.DateTime to its wire form.
func FromDateTime(dt naivetime.DateTime) DateTime {
	return DateTime{Date: FromDate(dt.Date()), Time: FromTime(dt.Time())}
}

// ToDateTime validates the wire fields, date first, and returns the
// combined value.
func (dt DateTime) ToDateTime() (naivetime.DateTime, error) {
	d, err := dt.Date.ToDate()
	if err != nil {
		return naivetime.DateTime{}, err
	}
	t, err := dt.Time.ToTime()
	if err != nil {
		return naivetime.DateTime{}, err
	}
	return naivetime.DateTimeOf(d, t), nil
}
