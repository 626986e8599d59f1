package tabula

// Column is one resolved column of a Layout.
type Column struct {
	Name     string
	Width    int // interior width in cells, exclusive of padding
	PadLeft  int
	PadRight int
	Align    Alignment
	Overflow Overflow
}

// Layout holds the concrete per-column widths computed for a target total
// width. A Layout is immutable once resolved and may be shared read-only
// across any number of row renders.
type Layout struct {
	cols []Column
}

// Len returns the number of columns.
func (l Layout) Len() int { return len(l.cols) }

// Col returns the resolved column at index i.
func (l Layout) Col(i int) Column { return l.cols[i] }

// Widths returns the interior width of every column.
func (l Layout) Widths() []int {
	out := make([]int, len(l.cols))
	for i, c := range l.cols {
		out[i] = c.Width
	}
	return out
}

// CellWidth returns the full width of column i including padding.
func (l Layout) CellWidth(i int) int {
	c := l.cols[i]
	return c.Width + c.PadLeft + c.PadRight
}

// Total returns the combined width of all columns including padding.
func (l Layout) Total() int {
	n := 0
	for i := range l.cols {
		n += l.CellWidth(i)
	}
	return n
}

// Resolve computes concrete column widths for totalWidth. Fixed and
// fractional specs commit their width up front; the leftover is divided
// evenly across the flexible columns with any remainder handed out one
// cell at a time left to right, so the consumed width equals totalWidth
// exactly whenever the fixed commitment fits and at least one flexible
// column exists.
//
// Resolve never fails and never produces a negative width: when the
// commitment exceeds totalWidth every flexible column degrades to its
// minimum (floored at one cell) and the table is allowed to overflow.
// Zero columns resolve to an empty layout. Resolve is a pure function;
// identical inputs yield identical layouts.
func Resolve(specs []ColumnSpec, totalWidth int) Layout {
	cols := make([]Column, len(specs))
	padTotal := 0
	for i, s := range specs {
		cols[i] = Column{
			Name:     s.Name,
			PadLeft:  max(s.PadLeft, 0),
			PadRight: max(s.PadRight, 0),
			Align:    s.Align,
			Overflow: s.Overflow,
		}
		padTotal += cols[i].PadLeft + cols[i].PadRight
	}
	usable := max(totalWidth-padTotal, 0)
	committed := padTotal
	var flex []int
	for i, s := range specs {
		switch {
		case s.Width > 0:
			cols[i].Width = s.Width
			committed += s.Width
		case s.Frac > 0 && s.Frac < 1:
			cols[i].Width = max(int(s.Frac*float64(usable)), 1)
			committed += cols[i].Width
		default:
			flex = append(flex, i)
		}
	}
	remaining := totalWidth - committed
	if len(flex) == 0 {
		// Positive leftover with no flexible columns is simply unused.
		return Layout{cols: cols}
	}
	if remaining < 0 {
		for _, i := range flex {
			cols[i].Width = max(specs[i].MinWidth, 1)
		}
		return Layout{cols: cols}
	}
	base := remaining / len(flex)
	extra := remaining % len(flex)
	for n, i := range flex {
		w := base
		if n < extra {
			w++
		}
		cols[i].Width = max(w, specs[i].MinWidth, 1)
	}
	return Layout{cols: cols}
}
