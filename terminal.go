package tabula

import (
	"fmt"
	"io"
	"strings"

	"github.com/mayfield/tabula/vtext"
)

// visual is the shared base for renderers that draw the table on a
// character grid: terminal, plain and markdown.
type visual struct {
	t        *Table
	screen   *rowScreen
	fallback Overflow
	stripped bool // drop styles from all output
	ruled    bool // footer rule drawn
}

func newVisual(t *Table, fallback Overflow, justifyDefault bool, reserve int, stripped bool) *visual {
	layout := t.resolveLayout(fallback, justifyDefault, reserve)
	return &visual{
		t:        t,
		screen:   newRowScreen(layout, t.clipText, fallback, t.pack),
		fallback: fallback,
		stripped: stripped,
	}
}

func (v *visual) prep(x vtext.Text) vtext.Text {
	if v.stripped {
		return x.Strip()
	}
	return x
}

// line joins formatted cells into one output line, trailing whitespace
// removed.
func (v *visual) line(cells []vtext.Text) string {
	return vtext.Join(vtext.Text{}, cells).RStrip().String()
}

func (v *visual) print(lines [][]vtext.Text, style func(string) string) error {
	for _, cells := range lines {
		s := v.line(cells)
		if style != nil {
			s = style(s)
		}
		if _, err := fmt.Fprintln(v.t.w, s); err != nil {
			return err
		}
	}
	return nil
}

func (v *visual) fullWidth(content vtext.Text, align Alignment) []vtext.Text {
	return v.screen.fullWidth(v.prep(content), align, v.t.clipText, v.fallback)
}

func (v *visual) Row(cells []vtext.Text) error {
	for i := range cells {
		cells[i] = v.prep(cells[i])
	}
	lines, err := v.screen.renderRow(cells)
	if err != nil {
		return err
	}
	return v.print(lines, nil)
}

func (v *visual) rule(w io.Writer, mark string) error {
	_, err := fmt.Fprintln(w, strings.Repeat(mark, v.screen.layout.Total()))
	return err
}

func (v *visual) Close() error {
	return v.print(v.screen.drain(), nil)
}

// terminalRenderer draws a table designed to fit and fill an interactive
// terminal: bold title, reverse-video header and a dim footer below a
// rule. Wide cells clip by default and leftover width is justified away.
type terminalRenderer struct {
	*visual
}

func newTerminalRenderer(t *Table) Renderer {
	return &terminalRenderer{newVisual(t, OverflowClip, true, 0, false)}
}

func (r *terminalRenderer) Title(title vtext.Text) error {
	if _, err := fmt.Fprintln(r.t.w); err != nil {
		return err
	}
	if err := r.print([][]vtext.Text{r.fullWidth(title, r.t.titleAlign)}, vtext.Bold); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.t.w)
	return err
}

func (r *terminalRenderer) Header(cells []vtext.Text) error {
	lines, err := r.screen.renderLine(cells)
	if err != nil {
		return err
	}
	return r.print(lines, vtext.Reverse)
}

func (r *terminalRenderer) Footer(content vtext.Text) error {
	if !r.ruled {
		r.ruled = true
		if err := r.rule(r.t.w, "—"); err != nil {
			return err
		}
	}
	return r.print([][]vtext.Text{r.fullWidth(content, r.t.titleAlign)}, vtext.Dim)
}
