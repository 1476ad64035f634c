package timestamp

import (
	"math"
	"time"
)

const (
	millisPerSecond = 1_000
	microsPerSecond = 1_000_000
	nanosPerSecond  = 1_000_000_000
)

// UnixMilli returns the number of milliseconds elapsed since the Unix epoch.
// ok is false when the result does not fit in an int64.
func UnixMilli(t time.Time) (ms int64, ok bool) {
	return unixScaled(t.Unix(), millisPerSecond, int64(t.Nanosecond()/1_000_000))
}

// UnixMicro returns the number of microseconds elapsed since the Unix epoch.
// ok is false when the result does not fit in an int64.
func UnixMicro(t time.Time) (us int64, ok bool) {
	return unixScaled(t.Unix(), microsPerSecond, int64(t.Nanosecond()/1_000))
}

// UnixNano returns the number of nanoseconds elapsed since the Unix epoch.
// Unlike time.Time.UnixNano the result never wraps: ok is false when it
// does not fit in an int64.
func UnixNano(t time.Time) (ns int64, ok bool) {
	return unixScaled(t.Unix(), nanosPerSecond, int64(t.Nanosecond()))
}

func unixScaled(seconds, factor, subsecond int64) (int64, bool) {
	scaled, ok := checkedMul(seconds, factor)
	if !ok {
		return 0, false
	}
	return checkedAdd(scaled, subsecond)
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return 0, false
	}
	return c, true
}

func checkedAdd(a, b int64) (int64, bool) {
	c := a + b
	// Overflow flips the sign relative to both operands.
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}
	return c, true
}
