// Package report turns a decoded input into the ordered lines shown to the
// user. Lines are plain data; styling is left to the caller.
package report

import (
	"strconv"
	"strings"
	"time"

	"gmauleon.org/tmt/pkg/discord"
	"gmauleon.org/tmt/pkg/timestamp"
	"gmauleon.org/tmt/pkg/twitter"
)

// OutOfBounds replaces the Unix timestamp breakdown when the instant does
// not fit in an int64 nanosecond count.
const OutOfBounds = "[time out of bounds]"

// Source names where a point in time came from.
type Source string

const (
	SourceSystemClock Source = "system clock"
	SourceArgument    Source = "command-line argument"
	SourceMessage     Source = "Discord message"
	SourceUser        Source = "Discord user"
)

// LineKind tells a presentation layer which part of the report a line is.
type LineKind int

const (
	KindSource LineKind = iota
	KindTime
	KindField
)

// SegmentKind tells a presentation layer what a piece of a line holds.
type SegmentKind int

const (
	SegmentValue SegmentKind = iota
	SegmentSeconds
	SegmentMillis
	SegmentMicros
	SegmentNanos
	SegmentSeparator
	SegmentOutOfBounds
)

type Segment struct {
	Text string
	Kind SegmentKind
}

type Line struct {
	Label    string
	Kind     LineKind
	Segments []Segment
}

// Value returns the unstyled text following the label.
func (l Line) Value() string {
	var sb strings.Builder
	for _, s := range l.Segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// String returns the unstyled line.
func (l Line) String() string {
	return l.Label + " " + l.Value()
}

// Operation is one of Timestamp, Discord or Twitter.
type Operation interface {
	lines() []Line
}

// Timestamp reports a bare point in time.
type Timestamp struct {
	Time time.Time
}

// Discord reports a decoded Discord snowflake.
type Discord struct {
	ID discord.ID
}

// Twitter reports a decoded Twitter snowflake.
type Twitter struct {
	ID twitter.ID
}

// Build returns the report for op: the source, the time lines and the
// snowflake fields, in that order.
func Build(op Operation, source Source) []Line {
	lines := []Line{{
		Label:    "Using",
		Kind:     KindSource,
		Segments: []Segment{{Text: string(source), Kind: SegmentValue}},
	}}

	return append(lines, op.lines()...)
}

// String returns the unstyled report, one line per entry.
func String(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (o Timestamp) lines() []Line {
	return timeLines(o.Time)
}

func (o Discord) lines() []Line {
	return append(timeLines(o.ID.Time),
		field("Discord internal worker ID:", uint64(o.ID.WorkerID)),
		field("Discord internal process ID:", uint64(o.ID.ProcessID)),
		field("Discord internal sequential number:", uint64(o.ID.Sequence)),
	)
}

func (o Twitter) lines() []Line {
	return append(timeLines(o.ID.Time),
		field("Twitter internal machine ID:", uint64(o.ID.MachineID)),
		field("Twitter internal sequential number:", uint64(o.ID.Sequence)),
	)
}

func timeLines(t time.Time) []Line {
	return []Line{
		ISO8601Line(t),
		RFC2822Line(t),
		CombinedLine(t),
	}
}

func ISO8601Line(t time.Time) Line {
	return Line{
		Label:    "ISO 8601/RFC 3339:",
		Kind:     KindTime,
		Segments: []Segment{{Text: timestamp.ISO8601(t), Kind: SegmentValue}},
	}
}

func RFC2822Line(t time.Time) Line {
	return Line{
		Label:    "RFC 2822:",
		Kind:     KindTime,
		Segments: []Segment{{Text: timestamp.FormatRFC2822(t), Kind: SegmentValue}},
	}
}

// CombinedLine shows the Unix timestamp of t with its seconds, milliseconds,
// microseconds and nanoseconds digits as separate segments, followed by the
// "s/ms/µs/ns" legend.
func CombinedLine(t time.Time) Line {
	line := Line{Label: "Unix timestamp:", Kind: KindTime}

	c, ok := timestamp.Split(t)
	if !ok {
		line.Segments = []Segment{{Text: OutOfBounds, Kind: SegmentOutOfBounds}}
		return line
	}

	seconds := c.Seconds
	if c.Negative {
		seconds = "-" + seconds
	}

	line.Segments = []Segment{
		{Text: seconds, Kind: SegmentSeconds},
		{Text: c.Millis, Kind: SegmentMillis},
		{Text: c.Micros, Kind: SegmentMicros},
		{Text: c.Nanos, Kind: SegmentNanos},
		{Text: " ", Kind: SegmentValue},
		{Text: "s", Kind: SegmentSeconds},
		{Text: "/", Kind: SegmentSeparator},
		{Text: "ms", Kind: SegmentMillis},
		{Text: "/", Kind: SegmentSeparator},
		{Text: "µs", Kind: SegmentMicros},
		{Text: "/", Kind: SegmentSeparator},
		{Text: "ns", Kind: SegmentNanos},
	}

	return line
}

func field(label string, v uint64) Line {
	return Line{
		Label:    label,
		Kind:     KindField,
		Segments: []Segment{{Text: strconv.FormatUint(v, 10), Kind: SegmentValue}},
	}
}
