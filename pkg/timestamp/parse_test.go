package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		unit  Unit
		want  time.Time
	}{
		{"auto seconds", "1632802669", UnitAuto, time.Unix(1632802669, 0)},
		{"auto millis", "1632802669990", UnitAuto, time.Unix(1632802669, 990000000)},
		{"auto micros", "1632802669990574", UnitAuto, time.Unix(1632802669, 990574000)},
		{"auto nanos", "1632802669990574670", UnitAuto, time.Unix(1632802669, 990574670)},
		{"auto negative seconds", "-86400", UnitAuto, time.Unix(-86400, 0)},
		{"explicit millis", "1000", UnitMillis, time.Unix(1, 0)},
		{"explicit nanos", "1000", UnitNanos, time.Unix(0, 1000)},
		{"surrounding space", " 42 ", UnitSeconds, time.Unix(42, 0)},
		{"rfc3339", "2021-09-28T04:17:49.99Z", UnitAuto, time.Unix(1632802669, 990000000)},
		{"rfc3339 offset", "2021-09-28T06:17:49+02:00", UnitAuto, time.Unix(1632802669, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.unit)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("yesterday", UnitAuto)
	assert.ErrorIs(t, err, ErrInvalidTimestamp)

	_, err = Parse("12", Unit("fortnights"))
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("MS")
	require.NoError(t, err)
	assert.Equal(t, UnitMillis, u)

	u, err = ParseUnit("auto")
	require.NoError(t, err)
	assert.Equal(t, UnitAuto, u)

	_, err = ParseUnit("weeks")
	assert.ErrorIs(t, err, ErrInvalidUnit)
}
