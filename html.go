package tabula

import (
	"fmt"
	"html"

	"github.com/mayfield/tabula/vtext"
)

// htmlRenderer emits table markup with thead/tbody/tfoot sections. Cell
// text is escaped and styling stripped; column alignment becomes inline
// text-align styles. Footers buffer until Close because tfoot must follow
// the body.
type htmlRenderer struct {
	t        *Table
	aligns   []Alignment
	opened   bool
	bodyOpen bool
	footers  []string
}

func newHTMLRenderer(t *Table) Renderer {
	specs := t.normalSpecs(OverflowPreformatted)
	aligns := make([]Alignment, len(specs))
	for i, s := range specs {
		aligns[i] = s.Align
	}
	return &htmlRenderer{t: t, aligns: aligns}
}

func (r *htmlRenderer) alignStyle(col int) string {
	if col >= len(r.aligns) {
		return ""
	}
	switch r.aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}

func (r *htmlRenderer) open() error {
	if r.opened {
		return nil
	}
	r.opened = true
	_, err := fmt.Fprintln(r.t.w, "<table>")
	return err
}

func (r *htmlRenderer) cells(tag string, cells []vtext.Text) error {
	if _, err := fmt.Fprintln(r.t.w, "    <tr>"); err != nil {
		return err
	}
	for i, c := range cells {
		_, err := fmt.Fprintf(r.t.w, "      <%s%s>%s</%s>\n",
			tag, r.alignStyle(i), html.EscapeString(c.Plain()), tag)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.t.w, "    </tr>")
	return err
}

func (r *htmlRenderer) Title(title vtext.Text) error {
	if err := r.open(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.t.w, "  <caption>%s</caption>\n",
		html.EscapeString(title.Plain()))
	return err
}

func (r *htmlRenderer) Header(cells []vtext.Text) error {
	if err := r.open(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.t.w, "  <thead>"); err != nil {
		return err
	}
	if err := r.cells("th", cells); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.t.w, "  </thead>")
	return err
}

func (r *htmlRenderer) Row(cells []vtext.Text) error {
	if err := r.open(); err != nil {
		return err
	}
	if !r.bodyOpen {
		r.bodyOpen = true
		if _, err := fmt.Fprintln(r.t.w, "  <tbody>"); err != nil {
			return err
		}
	}
	return r.cells("td", cells)
}

func (r *htmlRenderer) Footer(content vtext.Text) error {
	r.footers = append(r.footers, content.Plain())
	return nil
}

func (r *htmlRenderer) Close() error {
	if err := r.open(); err != nil {
		return err
	}
	if r.bodyOpen {
		if _, err := fmt.Fprintln(r.t.w, "  </tbody>"); err != nil {
			return err
		}
	}
	if len(r.footers) > 0 {
		if _, err := fmt.Fprintln(r.t.w, "  <tfoot>"); err != nil {
			return err
		}
		for _, f := range r.footers {
			if _, err := fmt.Fprintln(r.t.w, "    <tr>"); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(r.t.w, "      <td>%s</td>\n",
				html.EscapeString(f)); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(r.t.w, "    </tr>"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.t.w, "  </tfoot>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.t.w, "</table>")
	return err
}
