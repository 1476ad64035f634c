package timestamp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidUnit      = errors.New("invalid timestamp unit")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Unit is the resolution of an integer Unix timestamp.
type Unit string

const (
	UnitAuto    Unit = "auto"
	UnitSeconds Unit = "s"
	UnitMillis  Unit = "ms"
	UnitMicros  Unit = "us"
	UnitNanos   Unit = "ns"
)

// Units lists every accepted Unit.
var Units = []Unit{UnitAuto, UnitSeconds, UnitMillis, UnitMicros, UnitNanos}

// ParseUnit converts a unit name into a Unit.
func ParseUnit(s string) (Unit, error) {
	for _, u := range Units {
		if strings.EqualFold(s, string(u)) {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// Parse reads a point in time from s, either an RFC 3339 date or an integer
// Unix timestamp expressed in unit.
func Parse(s string, unit Unit) (time.Time, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromUnix(n, unit)
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is neither an integer nor an RFC 3339 date", ErrInvalidTimestamp, s)
	}

	return t.UTC(), nil
}

// FromUnix converts an integer Unix timestamp in the given unit. UnitAuto
// guesses the unit from the magnitude of n.
func FromUnix(n int64, unit Unit) (time.Time, error) {
	if unit == UnitAuto {
		unit = guessUnit(n)
	}

	switch unit {
	case UnitSeconds:
		return time.Unix(n, 0).UTC(), nil
	case UnitMillis:
		return time.UnixMilli(n).UTC(), nil
	case UnitMicros:
		return time.UnixMicro(n).UTC(), nil
	case UnitNanos:
		return time.Unix(0, n).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
}

func guessUnit(n int64) Unit {
	magnitude := uint64(n)
	if n < 0 {
		magnitude = uint64(-(n + 1)) + 1
	}

	switch {
	case magnitude <= math.MaxInt32:
		return UnitSeconds
	case magnitude <= 1e3*math.MaxInt32:
		return UnitMillis
	case magnitude <= 1e6*math.MaxInt32:
		return UnitMicros
	default:
		return UnitNanos
	}
}
