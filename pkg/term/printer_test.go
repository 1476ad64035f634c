package term

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmauleon.org/tmt/pkg/report"
)

func TestPrinterPlain(t *testing.T) {
	lines := report.Build(report.Timestamp{Time: time.Unix(1632802669, 990574670)}, report.SourceSystemClock)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, ModeNever).Print(lines))
	assert.Equal(t, report.String(lines), buf.String())
}

func TestPrinterColor(t *testing.T) {
	lines := report.Build(report.Timestamp{Time: time.Unix(1632802669, 990574670)}, report.SourceSystemClock)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, ModeAlways).Print(lines))

	out := buf.String()
	assert.Contains(t, out, "\x1b[32mUsing\x1b[0m \x1b[32msystem clock\x1b[0m\n")
	assert.Contains(t, out, "\x1b[36mRFC 2822:\x1b[0m")
	assert.Contains(t, out, "\x1b[33m990\x1b[0m")
	assert.Contains(t, out, "\x1b[35m670\x1b[0m")
}

func TestPrinterOutOfBounds(t *testing.T) {
	lines := []report.Line{report.CombinedLine(time.Unix(1<<40, 0))}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, ModeAlways).Print(lines))
	assert.Contains(t, buf.String(), "\x1b[91m"+report.OutOfBounds+"\x1b[0m")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrinterWriteError(t *testing.T) {
	lines := report.Build(report.Timestamp{Time: time.Unix(0, 0)}, report.SourceArgument)
	assert.Error(t, NewPrinter(failingWriter{}, ModeNever).Print(lines))
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"auto", "always", "never"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	_, err := ParseMode("sometimes")
	assert.ErrorIs(t, err, ErrInvalidMode)
}
