package tabula

import (
	"encoding/csv"

	"github.com/mayfield/tabula/vtext"
)

// csvRenderer emits delimiter-separated values through encoding/csv. Cell
// styling is stripped; titles and footers have no representation and are
// dropped.
type csvRenderer struct {
	t *Table
	w *csv.Writer
}

func newCSVRenderer(t *Table) Renderer {
	return &csvRenderer{t: t, w: csv.NewWriter(t.w)}
}

func newTSVRenderer(t *Table) Renderer {
	w := csv.NewWriter(t.w)
	w.Comma = '\t'
	return &csvRenderer{t: t, w: w}
}

func (r *csvRenderer) record(cells []vtext.Text) error {
	record := make([]string, len(cells))
	for i, c := range cells {
		record[i] = c.Plain()
	}
	return r.w.Write(record)
}

func (r *csvRenderer) Title(vtext.Text) error          { return nil }
func (r *csvRenderer) Header(cells []vtext.Text) error { return r.record(cells) }
func (r *csvRenderer) Row(cells []vtext.Text) error    { return r.record(cells) }
func (r *csvRenderer) Footer(vtext.Text) error         { return nil }

func (r *csvRenderer) Close() error {
	r.w.Flush()
	return r.w.Error()
}
