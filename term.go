package tabula

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is the assumed table width when the output sink is not a
// terminal and no explicit width was requested.
const DefaultWidth = 95

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// DetectWidth returns the terminal width of w, or DefaultWidth when w is
// not a terminal or its geometry cannot be read. Layout resolution takes a
// width parameter; this is the collaborator that supplies one.
func DetectWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return DefaultWidth
}
