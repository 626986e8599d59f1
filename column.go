package tabula

import (
	"fmt"
)

// Alignment controls horizontal cell justification.
type Alignment int

const (
	// AlignDefault defers to the table-wide alignment, which itself
	// renders left when unset.
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "default"
	}
}

// ParseAlignment converts a CLI-style string into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("invalid alignment: %q", s)
}

// Overflow controls how cell content wider than its column is handled.
type Overflow int

const (
	// OverflowDefault defers to the active renderer's preference.
	OverflowDefault Overflow = iota
	// OverflowClip truncates wide content, appending the clip marker.
	OverflowClip
	// OverflowWrap continues wide content on extra physical lines.
	OverflowWrap
	// OverflowPreformatted splits on newlines only; long lines push the
	// rest of that physical row to the right and the table may exceed its
	// requested width.
	OverflowPreformatted
)

func (o Overflow) String() string {
	switch o {
	case OverflowClip:
		return "clip"
	case OverflowWrap:
		return "wrap"
	case OverflowPreformatted:
		return "preformatted"
	default:
		return "default"
	}
}

// ParseOverflow converts a CLI-style string into an Overflow mode.
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "clip":
		return OverflowClip, nil
	case "wrap":
		return OverflowWrap, nil
	case "preformatted":
		return OverflowPreformatted, nil
	}
	return 0, fmt.Errorf("invalid overflow mode: %q", s)
}

// ColumnSpec declares the width, padding and justification of one table
// column prior to layout.
type ColumnSpec struct {
	Name string

	// Width is a fixed interior width in cells, exclusive of padding.
	// Zero leaves the column flexible.
	Width int

	// Frac sizes the column as a fraction (0, 1) of the usable width, the
	// total width minus all padding. Ignored when Width is set.
	Frac float64

	// MinWidth floors flexible sizing. Zero inherits the table minimum.
	MinWidth int

	// PadLeft and PadRight are cells of whitespace around the interior.
	// Zero inherits the table padding; negative values mean none.
	PadLeft  int
	PadRight int

	// Align of AlignDefault inherits the table alignment. An explicit
	// AlignLeft survives a table-wide override.
	Align Alignment

	// Overflow of OverflowDefault defers first to the table setting and
	// then to the renderer.
	Overflow Overflow
}

// fixed reports whether the spec has an explicit width.
func (c ColumnSpec) fixed() bool {
	return c.Width > 0 || (c.Frac > 0 && c.Frac < 1)
}
