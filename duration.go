package naivetime

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"
)

// Duration is a signed span of time stored as a 64-bit count of
// microseconds. The zero value is the zero duration.
//
// Its range is a strict subset of the host model's (which reaches
// ±one billion days): construction from host fields clamps anything
// outside [MinDuration, MaxDuration] to the nearest bound. See the
// package documentation for the truncation policy.
type Duration struct {
	micros int64
}

// MinDuration and MaxDuration are the exact representable bounds.
// Values exactly at a bound are stored exactly, never clamped.
var (
	MinDuration = Duration{micros: math.MinInt64}
	MaxDuration = Duration{micros: math.MaxInt64}
)

const (
	secondsPerDay   = 24 * 60 * 60
	microsPerDay    = secondsPerDay * 1_000_000
	microsPerSecond = 1_000_000
)

var (
	bigMicrosPerDay    = big.NewInt(microsPerDay)
	bigMicrosPerSecond = big.NewInt(microsPerSecond)
)

// NewDuration builds a Duration from the host model's (days, seconds,
// microseconds) shape. It is total: a span outside the representable
// range comes back as MinDuration or MaxDuration rather than an error,
// and the same input always yields the same result.
func NewDuration(days, seconds, micros int64) Duration {
	total := new(big.Int).Mul(big.NewInt(days), bigMicrosPerDay)
	total.Add(total, new(big.Int).Mul(big.NewInt(seconds), bigMicrosPerSecond))
	total.Add(total, big.NewInt(micros))
	return DurationFromBig(total)
}

// DurationFromBig truncates an arbitrary-width microsecond count to a
// Duration, clamping anything beyond the int64 bounds. The argument is
// not modified.
func DurationFromBig(micros *big.Int) Duration {
	if micros.IsInt64() {
		return Duration{micros: micros.Int64()}
	}
	if micros.Sign() > 0 {
		return MaxDuration
	}
	return MinDuration
}

// DurationMicros builds a Duration from a microsecond count.
// Every int64 count is representable, so no clamping can occur.
func DurationMicros(micros int64) Duration {
	return Duration{micros: micros}
}

// Micros returns the total microsecond count. It is the exact value
// the Duration was built from whenever that value was in range.
func (d Duration) Micros() int64 { return d.micros }

// Fields splits the duration into the host model's normalized shape:
// seconds in [0, 86399] and micros in [0, 999999], with the sign
// carried entirely by days.
func (d Duration) Fields() (days, seconds, micros int64) {
	days = d.micros / microsPerDay
	rem := d.micros % microsPerDay
	if rem < 0 {
		days--
		rem += microsPerDay
	}
	return days, rem / microsPerSecond, rem % microsPerSecond
}

// Compare orders two durations, returning -1, 0 or +1.
func (d Duration) Compare(o Duration) int {
	return cmp.Compare(d.micros, o.micros)
}

// String formats the duration as a signed decimal number of seconds,
// e.g. "-3850.5s".
func (d Duration) String() string {
	mag := uint64(d.micros)
	sign := ""
	if d.micros < 0 {
		mag = -mag
		sign = "-"
	}
	if mag%microsPerSecond == 0 {
		return fmt.Sprintf("%s%ds", sign, mag/microsPerSecond)
	}
	frac := strings.TrimRight(fmt.Sprintf("%06d", mag%microsPerSecond), "0")
	return fmt.Sprintf("%s%d.%ss", sign, mag/microsPerSecond, frac)
}

// DurationFromGo converts a time.Duration, truncating sub-microsecond
// resolution toward zero. Every time.Duration fits.
func DurationFromGo(gd time.Duration) Duration {
	return Duration{micros: gd.Nanoseconds() / 1000}
}

// ToGo converts to a time.Duration. Spans beyond what nanoseconds can
// hold saturate at the time.Duration bounds, mirroring the host-side
// truncation policy.
func (d Duration) ToGo() time.Duration {
	switch {
	case d.micros > math.MaxInt64/1000:
		return time.Duration(math.MaxInt64)
	case d.micros < math.MinInt64/1000:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(d.micros * 1000)
}
