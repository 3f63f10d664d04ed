package naivetime

import (
	"math"
	"testing"
	"time"
)

func mustDateTime(t *testing.T, y, mo, d, h, mi, s, us int) DateTime {
	t.Helper()
	dt, err := NewDateTime(y, mo, d, h, mi, s, us)
	if err != nil {
		t.Fatal(err)
	}
	return dt
}

func TestNewDateTime_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		year, month, day, hour, minute, second, micro int
	}{
		{2021, 1, 20, 22, 39, 46, 186605},
		{2020, 2, 29, 0, 0, 0, 0},
		{2016, 12, 31, 23, 59, 59, 123456},
		{2016, 12, 31, 23, 59, 60, 123456}, // leap second
		{1156, 3, 31, 11, 22, 33, 445566},
		{1, 1, 1, 0, 0, 0, 0},
		{3000, 6, 5, 4, 3, 2, 1},
		{9999, 12, 31, 23, 59, 59, 999999},
	} {
		dt, err := NewDateTime(tc.year, tc.month, tc.day, tc.hour, tc.minute, tc.second, tc.micro)
		if err != nil {
			t.Fatalf("NewDateTime(%+v) failed: %v", tc, err)
		}
		d, tm := dt.Date(), dt.Time()
		if d.Year() != tc.year || d.Month() != tc.month || d.Day() != tc.day {
			t.Fatalf("date fields mismatch: got %v, want %+v", d, tc)
		}
		if tm.Hour() != tc.hour || tm.Minute() != tc.minute ||
			tm.Second() != tc.second || tm.Microsecond() != tc.micro {
			t.Fatalf("time fields mismatch: got %v, want %+v", tm, tc)
		}
	}
}

func TestNewDateTime_DateCheckedFirst(t *testing.T) {
	// Both halves invalid: the date error wins.
	_, err := NewDateTime(2023, 2, 29, 99, 99, 99, 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := IsInvalidDate(err); !ok {
		t.Fatalf("expected InvalidDateError first, got %v", err)
	}

	// Valid date, invalid time.
	_, err = NewDateTime(2024, 2, 29, 23, 59, 61, 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := IsInvalidTime(err); !ok {
		t.Fatalf("expected InvalidTimeError, got %v", err)
	}
}

func TestDateTime_Compare(t *testing.T) {
	a := mustDateTime(t, 2023, 6, 15, 23, 59, 59, 0)
	b := mustDateTime(t, 2023, 6, 15, 23, 59, 60, 0)
	c := mustDateTime(t, 2023, 6, 16, 0, 0, 0, 0)

	if a.Compare(b) != -1 || b.Compare(c) != -1 {
		t.Fatal("chronological ordering wrong across a leap second")
	}
	if c.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatal("ordering wrong")
	}
}

func TestDateTime_String(t *testing.T) {
	dt := mustDateTime(t, 2016, 7, 8, 9, 10, 11, 0)
	if got := dt.String(); got != "2016-07-08 09:10:11" {
		t.Errorf("String() = %q, want %q", got, "2016-07-08 09:10:11")
	}
}

func TestDateTime_GoConversion(t *testing.T) {
	goTime := time.Date(2024, 6, 15, 12, 30, 45, 123456789, time.FixedZone("X", 3600))
	dt := DateTimeFromGo(goTime)

	// Naive: the wall-clock fields survive, the zone does not.
	if dt.Date().Day() != 15 || dt.Time().Hour() != 12 {
		t.Fatalf("DateTimeFromGo wall clock wrong: %v", dt)
	}

	back := dt.ToGo()
	want := time.Date(2024, 6, 15, 12, 30, 45, 123456789, time.UTC)
	if !back.Equal(want) {
		t.Fatalf("ToGo = %v, want %v", back, want)
	}
}

func TestDateTimeFromGo_ClampsFarYears(t *testing.T) {
	dt := DateTimeFromGo(time.Date(5_000_000_000, 1, 15, 12, 30, 45, 0, time.UTC))
	if dt.Date().Year() != math.MaxInt32 {
		t.Fatalf("date component must clamp: got year %d", dt.Date().Year())
	}
	// The clock fields are always representable and survive as-is.
	if dt.Time().Hour() != 12 || dt.Time().Minute() != 30 {
		t.Fatalf("clock fields wrong: %v", dt.Time())
	}
}

func TestDateTime_ToGoFlattensLeapSecond(t *testing.T) {
	dt := mustDateTime(t, 2016, 12, 31, 23, 59, 60, 0)
	want := time.Date(2016, 12, 31, 23, 59, 59, 0, time.UTC)
	if got := dt.ToGo(); !got.Equal(want) {
		t.Fatalf("ToGo = %v, want leap second flattened to %v", got, want)
	}
}
