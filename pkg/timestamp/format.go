package timestamp

import (
	"fmt"
	"time"
)

// RFC2822 is the layout used for RFC 2822 dates.
const RFC2822 = time.RFC1123Z

// ISO8601 formats t in UTC as RFC 3339 with a literal "Z" offset. The
// fraction is omitted for whole seconds, otherwise it uses the shortest of
// 3, 6 or 9 digits that represents t exactly.
func ISO8601(t time.Time) string {
	t = t.UTC()

	layout := "2006-01-02T15:04:05"
	switch ns := t.Nanosecond(); {
	case ns == 0:
	case ns%1_000_000 == 0:
		layout += ".000"
	case ns%1_000 == 0:
		layout += ".000000"
	default:
		layout += ".000000000"
	}

	return t.Format(layout + "Z07:00")
}

// FormatRFC2822 formats t in UTC using the RFC2822 layout.
func FormatRFC2822(t time.Time) string {
	return t.UTC().Format(RFC2822)
}

// Combined is a nanosecond Unix timestamp split into its decimal
// seconds, milliseconds, microseconds and nanoseconds digit groups.
type Combined struct {
	// Negative is set for instants before the Unix epoch. The digit groups
	// then hold the magnitude.
	Negative bool

	Seconds string
	Millis  string
	Micros  string
	Nanos   string
}

// String returns the groups concatenated, with a leading "-" when negative.
func (c Combined) String() string {
	sign := ""
	if c.Negative {
		sign = "-"
	}
	return sign + c.Seconds + c.Millis + c.Micros + c.Nanos
}

// Split returns the combined breakdown of t. ok is false when t is outside
// the range of an int64 nanosecond timestamp.
func Split(t time.Time) (c Combined, ok bool) {
	ns, ok := UnixNano(t)
	if !ok {
		return Combined{}, false
	}

	var magnitude uint64
	if ns < 0 {
		c.Negative = true
		magnitude = uint64(-(ns + 1)) + 1
	} else {
		magnitude = uint64(ns)
	}

	digits := fmt.Sprintf("%010d", magnitude)
	sec := len(digits) - 9

	c.Seconds = digits[:sec]
	c.Millis = digits[sec : sec+3]
	c.Micros = digits[sec+3 : sec+6]
	c.Nanos = digits[sec+6:]

	return c, true
}
