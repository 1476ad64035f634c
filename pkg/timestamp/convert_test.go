package timestamp

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixMilli(t *testing.T) {
	ms, ok := UnixMilli(time.Unix(1632802669, 990000000))
	require.True(t, ok)
	assert.Equal(t, int64(1632802669_990), ms)
}

func TestUnixMicro(t *testing.T) {
	us, ok := UnixMicro(time.Unix(1632802669, 990574000))
	require.True(t, ok)
	assert.Equal(t, int64(1632802669_990_574), us)
}

func TestUnixNano(t *testing.T) {
	ns, ok := UnixNano(time.Unix(1632802669, 990574670))
	require.True(t, ok)
	assert.Equal(t, int64(1632802669_990_574_670), ns)
}

func TestUnixScaledBounds(t *testing.T) {
	tests := []struct {
		name    string
		convert func(time.Time) (int64, bool)
		time    time.Time
		want    int64
		wantOK  bool
	}{
		{
			name:    "millis at max",
			convert: UnixMilli,
			time:    time.Unix(math.MaxInt64/1_000, 807_000_000),
			want:    math.MaxInt64,
			wantOK:  true,
		},
		{
			// The product fits but adding the remainder does not.
			name:    "millis add overflow",
			convert: UnixMilli,
			time:    time.Unix(math.MaxInt64/1_000, 808_000_000),
		},
		{
			name:    "millis mul overflow",
			convert: UnixMilli,
			time:    time.Unix(math.MaxInt64/1_000+1, 0),
		},
		{
			name:    "micros mul overflow",
			convert: UnixMicro,
			time:    time.Unix(math.MaxInt64/1_000_000+1, 0),
		},
		{
			name:    "nanos mul overflow",
			convert: UnixNano,
			time:    time.Unix(1<<40, 0),
		},
		{
			name:    "nanos before epoch",
			convert: UnixNano,
			time:    time.Unix(-1, 500_000_000),
			want:    -500_000_000,
			wantOK:  true,
		},
		{
			name:    "micros of zero",
			convert: UnixMicro,
			time:    time.Unix(0, 0),
			want:    0,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.convert(tt.time)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnixScaledMatchesStdlib(t *testing.T) {
	// Within range the checked conversions agree with time.Time.
	for _, tm := range []time.Time{
		time.Unix(0, 1),
		time.Unix(1632802669, 990574670),
		time.Unix(-86400*365, 123456789),
		time.Date(2262, 4, 11, 0, 0, 0, 0, time.UTC),
	} {
		ms, ok := UnixMilli(tm)
		require.True(t, ok)
		assert.Equal(t, tm.UnixMilli(), ms)

		us, ok := UnixMicro(tm)
		require.True(t, ok)
		assert.Equal(t, tm.UnixMicro(), us)

		ns, ok := UnixNano(tm)
		require.True(t, ok)
		assert.Equal(t, tm.UnixNano(), ns)
	}
}

func TestCheckedMul(t *testing.T) {
	_, ok := checkedMul(math.MinInt64, -1)
	assert.False(t, ok)

	_, ok = checkedMul(math.MaxInt64/2+1, 2)
	assert.False(t, ok)

	got, ok := checkedMul(-3, 7)
	require.True(t, ok)
	assert.Equal(t, int64(-21), got)
}

func TestCheckedAdd(t *testing.T) {
	_, ok := checkedAdd(math.MaxInt64, 1)
	assert.False(t, ok)

	_, ok = checkedAdd(math.MinInt64, -1)
	assert.False(t, ok)

	got, ok := checkedAdd(math.MinInt64, math.MaxInt64)
	require.True(t, ok)
	assert.Equal(t, int64(-1), got)
}
