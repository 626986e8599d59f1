// Package tabula lays out and renders row-oriented data for terminals,
// files and data interchange. Most of the package is dedicated to fitting
// data as losslessly as possible onto a character grid: a declarative
// column model, a layout engine that turns column specs and a target width
// into concrete cell widths, and a row renderer that applies padding,
// alignment and overflow handling to styled text.
//
// # Sessions
//
// A [Table] is one rendering session. Configure it with options, stream
// rows through it, and close it:
//
//	t := tabula.New(os.Stdout,
//		tabula.WithHeaders("Host", "Status"),
//		tabula.WithTitle("Fleet"))
//	t.WriteRow([]string{"web-1", "ok"})
//	t.WriteRow([]string{"web-2", "degraded"})
//	t.Close()
//
// Tables with flexible columns sample their input before committing to a
// layout, choosing widths that clip the least content. [Table.Flush]
// forces the layout early; [Table.Close] always flushes. Once the first
// output is produced the configuration is frozen; render a different
// configuration with a new Table.
//
// # Columns and layout
//
// [ColumnSpec] declares a column: fixed width, fractional width or
// flexible, plus padding, minimum width, alignment and overflow mode.
// [Resolve] is the pure layout function mapping specs and a total width to
// a [Layout] of concrete widths. It never fails: over-committed layouts
// saturate at minimum widths and the table overflows instead.
//
// # Formats
//
// Output formats live in a [Registry] passed to the table (see
// [DefaultRegistry] for the built-ins: terminal, plain, csv, tsv, json,
// yaml, markdown, html). When no format is chosen, terminal output is used
// on a tty and plain elsewhere. Custom renderers implement [Renderer] and
// register under a name; re-registration replaces, lookups of unknown
// names fail with [ErrUnknownFormat].
//
// # Styled text
//
// Cell values may carry ANSI escape sequences. The [vtext] subpackage
// measures, clips, wraps and justifies such text by its visible width so
// styling never corrupts the layout. Malformed sequences degrade quietly
// to their visible text.
//
// # Conveniences
//
// [Tabulate] renders slices of types implementing [Rower] (with optional
// [Headed], [Titled] and [Footered]), and [TabulateRows] renders raw
// rows. [Columnize], [Tree] and [ProgressBar] cover the adjacent layout
// chores of listing, trees and progress display.
//
// [vtext]: https://pkg.go.dev/github.com/mayfield/tabula/vtext
package tabula
