package wire

import "github.com/blockberries/naivetime"

// Delta is the wire form of a duration, in the host model's
// (days, seconds, microseconds) shape. The split carries spans far
// wider than an int64 microsecond count, so a payload can describe
// durations naivetime cannot hold; decoding clamps those.
//
// Encoded values are normalized: Seconds in [0, 86399] and Micros in
// [0, 999999], with the sign carried entirely by Days.
type Delta struct {
	Days    int64 `cramberry:"1"`
	Seconds int32 `cramberry:"2"`
	Micros  int32 `cramberry:"3"`
}

// FromDuration converts a naivetime.Duration to its normalized wire form.
func FromDuration(d naivetime.Duration) Delta {
	days, seconds, micros := d.Fields()
	return Delta{Days: days, Seconds: int32(seconds), Micros: int32(micros)}
}

// ToDuration combines the wire fields into a naivetime.Duration.
// It is total: out-of-range spans come back clamped to the exact
// boundary, never as an error.
func (d Delta) ToDuration() naivetime.Duration {
	return naivetime.NewDuration(d.Days, int64(d.Seconds), int64(d.Micros))
}
