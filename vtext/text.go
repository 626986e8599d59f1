// Package vtext provides display-width aware handling of text containing
// embedded ANSI escape sequences. A [Text] behaves like a string whose
// length is measured in terminal cells: escape sequences contribute zero
// width and survive clipping, wrapping and justification intact.
package vtext

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// segment is a run of either visible text or a single zero-width escape
// sequence.
type segment struct {
	text string
	esc  bool
}

// Text is parsed styled text. The zero value is empty text.
type Text struct {
	segs []segment
}

const (
	stNormal = iota
	stEsc    // just saw ESC, next rune determines sequence type
	stCSI    // inside CSI, waiting for the terminating letter
	stOSC    // inside OSC, waiting for BEL or ST
	stOSCEsc // inside OSC, just saw ESC (ESC \ ends the sequence)
)

// Parse scans s for ANSI escape sequences and returns a Text whose escape
// segments are excluded from width accounting. Parsing never fails:
// malformed or dangling sequences are dropped and the visible text is kept.
func Parse(s string) Text {
	var segs []segment
	var lit strings.Builder
	var esc strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{text: lit.String()})
			lit.Reset()
		}
	}
	state := stNormal
	for _, r := range s {
		switch state {
		case stNormal:
			if r == 0x1b {
				flushLit()
				esc.WriteRune(r)
				state = stEsc
				continue
			}
			lit.WriteRune(r)
		case stEsc:
			esc.WriteRune(r)
			switch r {
			case '[':
				state = stCSI
			case ']':
				state = stOSC
			default:
				// Single-character escape, e.g. ESC c.
				segs = append(segs, segment{text: esc.String(), esc: true})
				esc.Reset()
				state = stNormal
			}
		case stCSI:
			esc.WriteRune(r)
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				segs = append(segs, segment{text: esc.String(), esc: true})
				esc.Reset()
				state = stNormal
			}
		case stOSC:
			esc.WriteRune(r)
			switch r {
			case 0x1b:
				state = stOSCEsc
			case 0x07:
				segs = append(segs, segment{text: esc.String(), esc: true})
				esc.Reset()
				state = stNormal
			}
		case stOSCEsc:
			esc.WriteRune(r)
			if r == '\\' {
				segs = append(segs, segment{text: esc.String(), esc: true})
				esc.Reset()
				state = stNormal
			} else {
				state = stOSC
			}
		}
	}
	// An unterminated sequence is malformed; drop it quietly.
	flushLit()
	return Text{segs: segs}
}

// New returns a Text containing s as plain visible text. No escape parsing
// is performed; use [Parse] for strings that may carry ANSI sequences.
func New(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{segs: []segment{{text: s}}}
}

// Width returns the number of terminal cells the text occupies. Escape
// sequences count for zero. Width is grapheme-cluster aware so combining
// marks and emoji sequences measure as their displayed width.
func (t Text) Width() int {
	w := 0
	for _, seg := range t.segs {
		if seg.esc {
			continue
		}
		g := graphemes.FromString(seg.text)
		for g.Next() {
			w += runewidth.StringWidth(g.Value())
		}
	}
	return w
}

// String returns the text with escape sequences intact.
func (t Text) String() string {
	var b strings.Builder
	for _, seg := range t.segs {
		b.WriteString(seg.text)
	}
	return b.String()
}

// Plain returns just the visible text, with all escape sequences removed.
func (t Text) Plain() string {
	var b strings.Builder
	for _, seg := range t.segs {
		if !seg.esc {
			b.WriteString(seg.text)
		}
	}
	return b.String()
}

// Styled reports whether the text carries any escape sequences.
func (t Text) Styled() bool {
	for _, seg := range t.segs {
		if seg.esc {
			return true
		}
	}
	return false
}

// Strip returns a copy without any escape sequences.
func (t Text) Strip() Text {
	var segs []segment
	for _, seg := range t.segs {
		if !seg.esc {
			segs = append(segs, seg)
		}
	}
	return Text{segs: segs}
}

// Concat returns the concatenation of t and other.
func (t Text) Concat(other Text) Text {
	segs := make([]segment, 0, len(t.segs)+len(other.segs))
	segs = append(segs, t.segs...)
	segs = append(segs, other.segs...)
	return Text{segs: segs}
}

// append returns t with plain text s appended.
func (t Text) append(s string) Text {
	if s == "" {
		return t
	}
	segs := make([]segment, 0, len(t.segs)+1)
	segs = append(segs, t.segs...)
	return Text{segs: append(segs, segment{text: s})}
}

// prepend returns t with plain text s prepended.
func (t Text) prepend(s string) Text {
	if s == "" {
		return t
	}
	segs := make([]segment, 0, len(t.segs)+1)
	segs = append(segs, segment{text: s})
	return Text{segs: append(segs, t.segs...)}
}

// Join concatenates parts with sep between each element.
func Join(sep Text, parts []Text) Text {
	var out Text
	for i, p := range parts {
		if i > 0 {
			out = out.Concat(sep)
		}
		out = out.Concat(p)
	}
	return out
}

// Lines splits the text on newline characters, preserving escape state
// within each line.
func (t Text) Lines() []Text {
	var lines []Text
	var cur Text
	for _, seg := range t.segs {
		if seg.esc {
			cur.segs = append(cur.segs, seg)
			continue
		}
		rest := seg.text
		for {
			i := strings.IndexByte(rest, '\n')
			if i < 0 {
				break
			}
			cur.segs = append(cur.segs, segment{text: rest[:i]})
			lines = append(lines, cur)
			cur = Text{}
			rest = rest[i+1:]
		}
		if rest != "" {
			cur.segs = append(cur.segs, segment{text: rest})
		}
	}
	lines = append(lines, cur)
	return lines
}

// RStrip returns a copy with trailing visible whitespace removed.
func (t Text) RStrip() Text {
	segs := append([]segment(nil), t.segs...)
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].esc {
			continue
		}
		trimmed := strings.TrimRight(segs[i].text, " \t")
		if trimmed != "" {
			segs[i].text = trimmed
			break
		}
		segs = append(segs[:i], segs[i+1:]...)
	}
	return Text{segs: segs}
}

// sliceCells returns the subtext covering visible cells [start, stop).
// Escape sequences positioned inside the range are preserved and a reset is
// appended if any escape is active at the cut point, so clipped styling
// never leaks past the slice.
func (t Text) sliceCells(start, stop int) Text {
	if stop <= start {
		return Text{}
	}
	var out Text
	pos := 0
	escActive := false
	for _, seg := range t.segs {
		if seg.esc {
			if pos < stop {
				out.segs = append(out.segs, seg)
				escActive = seg.text != sgrReset
			}
			continue
		}
		if pos >= stop {
			continue
		}
		var b strings.Builder
		g := graphemes.FromString(seg.text)
		for g.Next() {
			gw := runewidth.StringWidth(g.Value())
			if pos >= start && pos+gw <= stop {
				b.WriteString(g.Value())
			}
			pos += gw
		}
		if b.Len() > 0 {
			out.segs = append(out.segs, segment{text: b.String()})
		}
	}
	if escActive {
		out.segs = append(out.segs, segment{text: sgrReset, esc: true})
	}
	return out
}

// Clip shortens the text to fit width cells, appending marker when content
// was removed. Only the first line is considered; newlines count as
// clipped content. If width is smaller than the marker itself the text is
// truncated without a marker. Open style state is reset at the clip point.
func (t Text) Clip(width int, marker string) Text {
	if width <= 0 {
		return Text{}
	}
	first := t.Lines()[0]
	clipping := len(t.Lines()) > 1
	stripped := first.RStrip()
	if stripped.Width() > width {
		clipping = true
	}
	if !clipping {
		return first
	}
	markerW := runewidth.StringWidth(marker)
	if markerW > width {
		return stripped.sliceCells(0, width)
	}
	keep := width - markerW
	if stripped.Width() < keep {
		keep = stripped.Width()
	}
	return stripped.sliceCells(0, keep).append(marker)
}

// LJust pads the text on the right to width cells.
func (t Text) LJust(width int) Text {
	if pad := width - t.Width(); pad > 0 {
		return t.append(strings.Repeat(" ", pad))
	}
	return t
}

// RJust pads the text on the left to width cells.
func (t Text) RJust(width int) Text {
	if pad := width - t.Width(); pad > 0 {
		return t.prepend(strings.Repeat(" ", pad))
	}
	return t
}

// Pad surrounds the text with left and right cells of whitespace.
// Negative counts are treated as zero.
func (t Text) Pad(left, right int) Text {
	out := t
	if left > 0 {
		out = out.prepend(strings.Repeat(" ", left))
	}
	if right > 0 {
		out = out.append(strings.Repeat(" ", right))
	}
	return out
}

// Center pads the text on both sides to width cells. Uneven padding always
// favors the trailing side, which keeps clumps of centered text stable.
func (t Text) Center(width int) Text {
	pad := width - t.Width()
	if pad <= 0 {
		return t
	}
	left := pad / 2
	return t.prepend(strings.Repeat(" ", left)).append(strings.Repeat(" ", pad-left))
}
