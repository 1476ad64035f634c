// Package term writes reports to a terminal.
package term

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"gmauleon.org/tmt/pkg/report"
)

var ErrInvalidMode = errors.New("invalid color mode")

// Mode selects when output is colored.
type Mode string

const (
	// ModeAuto colors output when stdout is a terminal and NO_COLOR is unset.
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

type Printer struct {
	w io.Writer

	sourceLabel *color.Color
	label       *color.Color
	segments    map[report.SegmentKind]*color.Color
}

func NewPrinter(w io.Writer, mode Mode) *Printer {
	p := &Printer{
		w:           w,
		sourceLabel: color.New(color.FgGreen),
		label:       color.New(color.FgCyan),
		segments: map[report.SegmentKind]*color.Color{
			report.SegmentValue:       color.New(color.FgHiBlue),
			report.SegmentSeconds:     color.New(color.FgHiBlue),
			report.SegmentMillis:      color.New(color.FgYellow),
			report.SegmentMicros:      color.New(color.FgHiRed),
			report.SegmentNanos:       color.New(color.FgMagenta),
			report.SegmentSeparator:   color.New(color.FgCyan),
			report.SegmentOutOfBounds: color.New(color.FgHiRed),
		},
	}

	for _, c := range p.colors() {
		switch mode {
		case ModeAlways:
			c.EnableColor()
		case ModeNever:
			c.DisableColor()
		}
	}

	return p
}

// Print writes lines in order, one per line.
func (p *Printer) Print(lines []report.Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.w, p.format(l)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func (p *Printer) format(l report.Line) string {
	label, value := p.label, p.segments[report.SegmentValue]
	if l.Kind == report.KindSource {
		label, value = p.sourceLabel, p.sourceLabel
	}

	out := label.Sprint(l.Label) + " "
	for _, s := range l.Segments {
		c, ok := p.segments[s.Kind]
		if !ok || s.Kind == report.SegmentValue {
			c = value
		}
		out += c.Sprint(s.Text)
	}

	return out
}

func (p *Printer) colors() []*color.Color {
	colors := []*color.Color{p.sourceLabel, p.label}
	for _, c := range p.segments {
		colors = append(colors, c)
	}
	return colors
}
