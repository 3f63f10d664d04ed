// Package naivetime provides naive (zone-less) calendrical value types —
// [Date], [Time], [DateTime] and [Duration] — with validated construction
// from, and lossless extraction to, plain host-facing fields.
//
// The types target the boundary between two calendrical models: a wide-range
// host model (microsecond precision, durations up to ±one billion days) and
// the narrower systems model these types implement (nanosecond precision,
// leap-second aware, durations bounded to a signed 64-bit microsecond count).
// All values use the proleptic Gregorian calendar. Timezones are deliberately
// unsupported: every value is naive.
//
// Leap seconds are handled by widening the second field: a second value of 60
// marks a leap second, and round-trips through construction and extraction
// unchanged.
//
// # Truncation
//
// The host model can describe durations from negative one billion days up to
// positive one billion days at microsecond precision. [Duration] only holds
// microseconds as int64, which covers a strict subset of that range. A host
// duration outside [MinDuration, MaxDuration] is truncated to the nearest
// bound by [NewDuration]. This is a documented lossy policy, not an error:
// duration construction is total, deterministic, and clamps to the exact
// boundary value.
//
// Structured serialization of all four types lives in the wire subpackage.
package naivetime
