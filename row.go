package tabula

import (
	"fmt"

	"github.com/mayfield/tabula/vtext"
)

// cellFormatter turns one cell value into its formatted output lines,
// applying overflow handling, alignment and padding for its column.
type cellFormatter func(vtext.Text) []vtext.Text

func makeFormatter(col Column, clip string, fallback Overflow) cellFormatter {
	width := col.Width
	overflow := col.Overflow
	if overflow == OverflowDefault {
		overflow = fallback
	}
	var spill func(vtext.Text) []vtext.Text
	switch overflow {
	case OverflowClip:
		spill = func(x vtext.Text) []vtext.Text {
			return []vtext.Text{x.Clip(width, clip)}
		}
	case OverflowWrap:
		spill = func(x vtext.Text) []vtext.Text {
			return x.Wrap(width)
		}
	default:
		spill = func(x vtext.Text) []vtext.Text {
			return x.Lines()
		}
	}
	align := func(x vtext.Text) vtext.Text {
		switch col.Align {
		case AlignRight:
			return x.RJust(width)
		case AlignCenter:
			return x.Center(width)
		default:
			return x.LJust(width)
		}
	}
	return func(x vtext.Text) []vtext.Text {
		lines := spill(x)
		out := make([]vtext.Text, len(lines))
		for i, line := range lines {
			out[i] = align(line).Pad(col.PadLeft, col.PadRight)
		}
		return out
	}
}

// rowScreen renders logical rows into physical lines of formatted cells
// using a resolved Layout. One cell overflowing a row never disturbs the
// layout of other rows; only that row grows extra lines.
type rowScreen struct {
	layout     Layout
	formatters []cellFormatter
	blanks     []vtext.Text
	pack       bool
	queues     [][]vtext.Text // per-column pending lines when packing
}

func newRowScreen(layout Layout, clip string, fallback Overflow, pack bool) *rowScreen {
	s := &rowScreen{layout: layout, pack: pack}
	s.formatters = make([]cellFormatter, layout.Len())
	s.blanks = make([]vtext.Text, layout.Len())
	for i := 0; i < layout.Len(); i++ {
		s.formatters[i] = makeFormatter(layout.Col(i), clip, fallback)
		s.blanks[i] = s.formatters[i](vtext.Text{})[0]
	}
	if pack {
		s.queues = make([][]vtext.Text, layout.Len())
	}
	return s
}

// renderRow formats one logical row. The result is one or more physical
// lines, each holding a formatted cell per column. Columns producing fewer
// lines than the row's tallest are blank-padded; in pack mode column lines
// are instead queued and emitted top-packed, so some output may be held
// until later rows or drain.
func (s *rowScreen) renderRow(cells []vtext.Text) ([][]vtext.Text, error) {
	if len(cells) != s.layout.Len() {
		return nil, fmt.Errorf("%w: got %d cells for %d columns",
			ErrRowShape, len(cells), s.layout.Len())
	}
	cols := make([][]vtext.Text, len(cells))
	height := 1
	for i, cell := range cells {
		cols[i] = s.formatters[i](cell)
		if len(cols[i]) > height {
			height = len(cols[i])
		}
	}
	if s.pack {
		for i, lines := range cols {
			s.queues[i] = append(s.queues[i], lines...)
		}
		return s.packLines(false), nil
	}
	return s.padLines(cols, height), nil
}

// renderLine formats a single logical row with blank padding, bypassing
// pack mode. Used for headers, which never interleave with row content.
func (s *rowScreen) renderLine(cells []vtext.Text) ([][]vtext.Text, error) {
	if len(cells) != s.layout.Len() {
		return nil, fmt.Errorf("%w: got %d cells for %d columns",
			ErrRowShape, len(cells), s.layout.Len())
	}
	cols := make([][]vtext.Text, len(cells))
	height := 1
	for i, cell := range cells {
		cols[i] = s.formatters[i](cell)
		if len(cols[i]) > height {
			height = len(cols[i])
		}
	}
	return s.padLines(cols, height), nil
}

// padLines zips per-column line stacks into physical lines, blank-padding
// the columns that came up short.
func (s *rowScreen) padLines(cols [][]vtext.Text, height int) [][]vtext.Text {
	out := make([][]vtext.Text, height)
	for n := 0; n < height; n++ {
		line := make([]vtext.Text, len(cols))
		for i, lines := range cols {
			if n < len(lines) {
				line[i] = lines[n]
			} else {
				line[i] = s.blanks[i]
			}
		}
		out[n] = line
	}
	return out
}

// packLines emits physical lines while every column queue has content.
// With final set, leftover lines are flushed with blank cells filling the
// exhausted columns.
func (s *rowScreen) packLines(final bool) [][]vtext.Text {
	var out [][]vtext.Text
	for {
		full := true
		any := false
		for _, q := range s.queues {
			if len(q) == 0 {
				full = false
			} else {
				any = true
			}
		}
		if !any || (!full && !final) {
			break
		}
		line := make([]vtext.Text, len(s.queues))
		for i, q := range s.queues {
			if len(q) > 0 {
				line[i] = q[0]
				s.queues[i] = q[1:]
			} else {
				line[i] = s.blanks[i]
			}
		}
		out = append(out, line)
	}
	return out
}

// drain returns any lines still held by pack mode.
func (s *rowScreen) drain() [][]vtext.Text {
	if !s.pack {
		return nil
	}
	return s.packLines(true)
}

// fullWidth formats content across the table's entire width, inheriting
// padding from the first column. Used for titles and footers.
func (s *rowScreen) fullWidth(content vtext.Text, align Alignment, clip string, fallback Overflow) []vtext.Text {
	padLeft, padRight := 0, 0
	if s.layout.Len() > 0 {
		padLeft = s.layout.Col(0).PadLeft
		padRight = s.layout.Col(0).PadRight
	}
	col := Column{
		Width:    max(s.layout.Total()-padLeft-padRight, 1),
		PadLeft:  padLeft,
		PadRight: padRight,
		Align:    align,
		Overflow: fallback,
	}
	return makeFormatter(col, clip, fallback)(content)
}
