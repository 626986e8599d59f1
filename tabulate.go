package tabula

import (
	"io"
)

// Rower provides row data. Required by Tabulate.
type Rower interface {
	Row() []string
}

// Headed provides column headers.
// Default: headers taken from the first row, if TabulateRows is used, or
// none at all.
type Headed interface {
	Header() []string
}

// Titled renders a title above the table.
// Default: no title.
type Titled interface {
	Title() string
}

// Footered renders footer content below the table.
// Default: no footer.
type Footered interface {
	Footer() []string
}

// Tabulate renders items through a table session without constructing one
// by hand. The first item's optional interfaces (Headed, Titled, Footered)
// configure the session; explicit options still win.
func Tabulate[T Rower](w io.Writer, items []T, opts ...Option) error {
	var lead []Option
	if len(items) > 0 {
		first := any(items[0])
		if h, ok := first.(Headed); ok {
			lead = append(lead, WithHeaders(h.Header()...))
		}
		if ti, ok := first.(Titled); ok {
			lead = append(lead, WithTitle(ti.Title()))
		}
	}
	t := New(w, append(lead, opts...)...)
	for _, item := range items {
		if err := t.WriteRow(item.Row()); err != nil {
			return err
		}
	}
	if len(items) > 0 {
		if f, ok := any(items[0]).(Footered); ok {
			for _, content := range f.Footer() {
				if err := t.WriteFooter(content); err != nil {
					return err
				}
			}
		}
	}
	return t.Close()
}

// TabulateRows renders raw rows, treating the first as headers unless the
// options already set some.
func TabulateRows(w io.Writer, rows [][]string, opts ...Option) error {
	t := New(w, opts...)
	if len(t.headers) == 0 && len(rows) > 0 {
		t.headers = rows[0]
		rows = rows[1:]
	}
	if err := t.WriteRows(rows); err != nil {
		return err
	}
	return t.Close()
}
