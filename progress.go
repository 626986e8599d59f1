package tabula

import (
	"fmt"
	"io"
	"strings"
)

// ProgressBar draws a manually driven progress indicator on one line,
// redrawn in place with a carriage return. On terminals the bar uses
// eighth-block partial fills; elsewhere it degrades to ASCII.
type ProgressBar struct {
	w           io.Writer
	min, max    float64
	width       int
	barWidth    int
	prefix      string
	suffix      string
	partials    []rune
	fill        string
	showPercent bool
	value       float64
}

// NewProgressBar creates a bar spanning [0, max]. Width of zero detects
// the terminal.
func NewProgressBar(w io.Writer, max float64, width int) *ProgressBar {
	if width <= 0 {
		width = DetectWidth(w)
	}
	b := &ProgressBar{
		w:           w,
		max:         max,
		width:       width,
		prefix:      " ",
		suffix:      " ",
		partials:    []rune("▏▎▍▌▋▊▉█"),
		fill:        "▯",
		showPercent: true,
	}
	if !isTerminal(w) {
		b.partials = []rune("#")
		b.fill = "-"
	}
	b.barWidth = width - len(b.prefix) - len(b.suffix)
	if b.showPercent {
		b.barWidth -= 5
	}
	if b.barWidth < 1 {
		b.barWidth = 1
	}
	return b
}

// Set updates the value and redraws the bar.
func (b *ProgressBar) Set(value float64) error {
	b.value = value
	return b.Draw()
}

// Draw renders the bar at its current value without a trailing newline.
func (b *ProgressBar) Draw() error {
	span := b.max - b.min
	if span <= 0 {
		span = 1
	}
	pct := (b.value - b.min) / span
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	cells := pct * float64(b.barWidth)
	whole := int(cells)
	drawn := whole
	full := string(b.partials[len(b.partials)-1])
	bar := strings.Repeat(full, whole)
	// A partial block only appears for a non-zero fraction, so an empty
	// bar stays empty.
	if frac := cells - float64(whole); whole < b.barWidth && frac > 0 {
		bar += string(b.partials[int(frac*float64(len(b.partials)))])
		drawn++
	}
	fill := strings.Repeat(b.fill, b.barWidth-drawn)
	out := "\r" + b.prefix + bar + fill
	if b.showPercent {
		out += fmt.Sprintf("%4.0f%%", pct*100)
	}
	out += b.suffix
	_, err := io.WriteString(b.w, out)
	return err
}

// Clear erases the bar line.
func (b *ProgressBar) Clear() error {
	_, err := fmt.Fprintf(b.w, "\r%s\n", strings.Repeat(" ", b.width))
	return err
}
