package tabula

import (
	"github.com/mayfield/tabula/vtext"
)

// plainRenderer draws the table without any escape sequences, suited for
// pipes and files. Cell content is preformatted by default so nothing is
// lost to clipping; the header is set off by a rule of dashes.
type plainRenderer struct {
	*visual
}

func newPlainRenderer(t *Table) Renderer {
	return &plainRenderer{newVisual(t, OverflowPreformatted, false, 0, true)}
}

func (r *plainRenderer) Title(title vtext.Text) error {
	return r.print([][]vtext.Text{r.fullWidth(title, r.t.titleAlign)}, nil)
}

func (r *plainRenderer) Header(cells []vtext.Text) error {
	for i := range cells {
		cells[i] = r.prep(cells[i])
	}
	lines, err := r.screen.renderLine(cells)
	if err != nil {
		return err
	}
	if err := r.print(lines, nil); err != nil {
		return err
	}
	return r.rule(r.t.w, "-")
}

func (r *plainRenderer) Footer(content vtext.Text) error {
	if !r.ruled {
		r.ruled = true
		if err := r.rule(r.t.w, "-"); err != nil {
			return err
		}
	}
	return r.print([][]vtext.Text{r.fullWidth(content, r.t.titleAlign)}, nil)
}
