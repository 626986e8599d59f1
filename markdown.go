package tabula

import (
	"fmt"
	"strings"

	"github.com/mayfield/tabula/vtext"
)

// markdownRenderer emits a pipe table. The layout reserves one cell per
// column border so the rendered table still fits the target width. Titles
// become a bold paragraph above the table and footers an italic one below.
type markdownRenderer struct {
	*visual
}

func newMarkdownRenderer(t *Table) Renderer {
	reserve := t.columnCount() + 1
	return &markdownRenderer{newVisual(t, OverflowPreformatted, false, reserve, true)}
}

func (r *markdownRenderer) mdprint(cells []vtext.Text) error {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	_, err := fmt.Fprintf(r.t.w, "|%s|\n", strings.Join(parts, "|"))
	return err
}

func (r *markdownRenderer) mdlines(lines [][]vtext.Text) error {
	for _, cells := range lines {
		if err := r.mdprint(cells); err != nil {
			return err
		}
	}
	return nil
}

func (r *markdownRenderer) Title(title vtext.Text) error {
	text := vtext.Join(vtext.Text{}, r.fullWidth(title, r.t.titleAlign)).RStrip()
	_, err := fmt.Fprintf(r.t.w, "\n**%s**\n\n", strings.TrimSpace(text.Plain()))
	return err
}

func (r *markdownRenderer) Header(cells []vtext.Text) error {
	for i := range cells {
		cells[i] = r.prep(cells[i])
	}
	lines, err := r.screen.renderLine(cells)
	if err != nil {
		return err
	}
	if err := r.mdlines(lines); err != nil {
		return err
	}
	sep := make([]vtext.Text, r.screen.layout.Len())
	for i := range sep {
		sep[i] = vtext.New(strings.Repeat("-", r.screen.layout.CellWidth(i)))
	}
	return r.mdprint(sep)
}

func (r *markdownRenderer) Row(cells []vtext.Text) error {
	for i := range cells {
		cells[i] = r.prep(cells[i])
	}
	lines, err := r.screen.renderRow(cells)
	if err != nil {
		return err
	}
	return r.mdlines(lines)
}

func (r *markdownRenderer) Footer(content vtext.Text) error {
	_, err := fmt.Fprintf(r.t.w, "\n_%s_\n", strings.TrimSpace(content.Plain()))
	return err
}

func (r *markdownRenderer) Close() error {
	return r.mdlines(r.screen.drain())
}
