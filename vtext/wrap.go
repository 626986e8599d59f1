package vtext

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// chunk is a run of visible cells that wraps as a unit: either a whitespace
// run or a word fragment. Words break after hyphens so the hyphen stays on
// the leftmost line.
type chunk struct {
	start int // cell offset
	width int // cell count
	space bool
}

func chunkCells(plain string) []chunk {
	var chunks []chunk
	var cur *chunk
	pos := 0
	g := graphemes.FromString(plain)
	for g.Next() {
		v := g.Value()
		w := runewidth.StringWidth(v)
		space := v == " " || v == "\t"
		if cur == nil || cur.space != space {
			chunks = append(chunks, chunk{start: pos, space: space})
			cur = &chunks[len(chunks)-1]
		}
		cur.width += w
		pos += w
		if !space && strings.HasSuffix(v, "-") {
			cur = nil
		}
	}
	return chunks
}

// Wrap breaks the text into lines of at most width cells. Breaks happen at
// whitespace and after hyphens; words wider than a full line are split
// hard. Newlines in the source always force a break and blank lines are
// preserved. Escape sequences carry across the produced lines safely.
func (t Text) Wrap(width int) []Text {
	if width < 1 {
		width = 1
	}
	var out []Text
	for _, line := range t.Lines() {
		out = append(out, line.wrapLine(width)...)
	}
	return out
}

func (t Text) wrapLine(width int) []Text {
	chunks := chunkCells(t.Plain())
	var lines []Text
	start := -1 // cell offset where the current output line begins
	end := 0    // one past the last committed word cell
	for _, c := range chunks {
		if c.space {
			continue
		}
		if start >= 0 && c.start+c.width-start > width {
			lines = append(lines, t.sliceCells(start, end))
			start = -1
		}
		if start < 0 {
			start = c.start
		}
		for c.start+c.width-start > width {
			lines = append(lines, t.sliceCells(start, start+width))
			start += width
		}
		end = c.start + c.width
	}
	if start < 0 {
		return append(lines, Text{})
	}
	return append(lines, t.sliceCells(start, end))
}
