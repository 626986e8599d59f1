package tabula

import (
	"fmt"
	"io"

	"github.com/mayfield/tabula/vtext"
)

// Columnize flows a flat list into as many columns as fit width, filling
// column-major like ls. Width of zero detects the terminal. Items narrower
// than the widest are padded; styled items measure by visible width.
func Columnize(w io.Writer, items []string, width int) error {
	if len(items) == 0 {
		return nil
	}
	if width <= 0 {
		width = DetectWidth(w)
	}
	texts := make([]vtext.Text, len(items))
	maxWidth := 0
	for i, item := range items {
		texts[i] = vtext.Parse(item)
		if tw := texts[i].Width(); tw > maxWidth {
			maxWidth = tw
		}
	}
	colSize := maxWidth + 2
	cols := width / colSize
	if cols < 2 {
		for _, t := range texts {
			if _, err := fmt.Fprintln(w, t.String()); err != nil {
				return err
			}
		}
		return nil
	}
	lines := (len(texts) + cols - 1) / cols
	for i := 0; i < lines; i++ {
		line := vtext.Text{}
		for j := i; j < len(texts); j += lines {
			line = line.Concat(texts[j].LJust(colSize))
		}
		if _, err := fmt.Fprintln(w, line.RStrip().String()); err != nil {
			return err
		}
	}
	return nil
}
