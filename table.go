package tabula

import (
	"fmt"
	"io"

	"github.com/mayfield/tabula/vtext"
)

const (
	// DefaultClipText marks clipped cell content.
	DefaultClipText = "…"
	// DefaultPadding is the whitespace on each side of a column interior.
	DefaultPadding = 1
	// flexSampleCap bounds how many rows a flex table buffers before
	// committing to a layout.
	flexSampleCap = 1000
)

// Table is a single rendering session for row-oriented data. Construct it
// with New, feed it rows with WriteRow/WriteRows, then Close it so
// buffering renderers can emit their output. A Table is used sequentially
// by one caller; its configuration freezes once the first output is
// produced and a new Table is required for a different configuration.
type Table struct {
	w        io.Writer
	registry *Registry
	format   string

	title      string
	titleAlign Alignment
	headers    []string
	specs      []ColumnSpec
	width      int
	overflow   Overflow
	clipText   string
	padLeft    int
	padRight   int
	align      Alignment
	minWidth   int
	hideHeader bool
	hideFooter bool
	pack       bool
	flex       bool
	justify    bool
	justifySet bool
	mask       []int

	r        Renderer
	ncols    int // output column count, fixed by the first row when inferred
	layout   Layout
	resolved bool
	started  bool
	closed   bool
	sample   [][]vtext.Text

	// parameters the cached layout was resolved under
	resolvedFallback Overflow
	resolvedJustify  bool
	resolvedReserve  int
}

// Option configures a Table.
type Option func(*Table)

// WithColumns sets explicit column specifications.
func WithColumns(specs ...ColumnSpec) Option {
	return func(t *Table) { t.specs = specs }
}

// WithHeaders sets the header cells, which also fix the column count when
// no explicit columns are given.
func WithHeaders(headers ...string) Option {
	return func(t *Table) { t.headers = headers }
}

// WithTitle sets a title rendered above the table.
func WithTitle(title string) Option {
	return func(t *Table) { t.title = title }
}

// WithTitleAlign sets the title justification. Default left.
func WithTitleAlign(a Alignment) Option {
	return func(t *Table) { t.titleAlign = a }
}

// WithWidth sets the target total width in cells. Zero detects the
// terminal width, falling back to DefaultWidth off terminals.
func WithWidth(width int) Option {
	return func(t *Table) { t.width = width }
}

// WithFormat selects the output format by registry name. When unset, the
// table picks "terminal" on a tty and "plain" otherwise.
func WithFormat(name string) Option {
	return func(t *Table) { t.format = name }
}

// WithRegistry replaces the renderer registry consulted at session start.
func WithRegistry(r *Registry) Option {
	return func(t *Table) { t.registry = r }
}

// WithOverflow sets the table-wide overflow mode. Individual columns may
// override it.
func WithOverflow(o Overflow) Option {
	return func(t *Table) { t.overflow = o }
}

// WithClipText overrides the marker appended to clipped cells.
func WithClipText(marker string) Option {
	return func(t *Table) { t.clipText = marker }
}

// WithPadding sets the default left and right column padding.
func WithPadding(left, right int) Option {
	return func(t *Table) {
		t.padLeft = left
		t.padRight = right
	}
}

// WithAlignment sets the default alignment for columns that leave Align
// as AlignDefault.
func WithAlignment(a Alignment) Option {
	return func(t *Table) { t.align = a }
}

// WithMinWidth sets the default minimum interior width of flexible columns.
func WithMinWidth(w int) Option {
	return func(t *Table) { t.minWidth = w }
}

// WithHideHeader suppresses the title and header output.
func WithHideHeader() Option {
	return func(t *Table) { t.hideHeader = true }
}

// WithHideFooter suppresses footer output.
func WithHideFooter() Option {
	return func(t *Table) { t.hideFooter = true }
}

// WithRowPacking top-packs multi-line rows instead of blank-padding each
// logical row to its tallest column.
func WithRowPacking() Option {
	return func(t *Table) { t.pack = true }
}

// WithFlex toggles content-driven sizing of flexible columns. On by
// default; when off, leftover width is split evenly.
func WithFlex(on bool) Option {
	return func(t *Table) { t.flex = on }
}

// WithJustify overrides the renderer's default for distributing leftover
// width so the table fills its target exactly.
func WithJustify(on bool) Option {
	return func(t *Table) {
		t.justify = on
		t.justifySet = true
	}
}

// WithColumnMask restricts output to the given 1-based column positions.
func WithColumnMask(positions ...int) Option {
	return func(t *Table) { t.mask = positions }
}

// New creates a table session writing to w.
func New(w io.Writer, opts ...Option) *Table {
	t := &Table{
		w:        w,
		clipText: DefaultClipText,
		padLeft:  DefaultPadding,
		padRight: DefaultPadding,
		flex:     true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.registry == nil {
		t.registry = DefaultRegistry()
	}
	return t
}

// maskFilter keeps the 1-based positions named by the table's column mask.
func maskFilter[T any](mask []int, items []T) []T {
	if len(mask) == 0 {
		return items
	}
	keep := make(map[int]bool, len(mask))
	for _, pos := range mask {
		keep[pos] = true
	}
	out := make([]T, 0, len(mask))
	for i, x := range items {
		if keep[i+1] {
			out = append(out, x)
		}
	}
	return out
}

// columnCount returns the number of output columns, or zero when it is not
// yet known. Explicit specs win, then headers, then the first sampled row.
func (t *Table) columnCount() int {
	n := len(t.specs)
	if n == 0 {
		n = len(t.headers)
	}
	if n == 0 && len(t.sample) > 0 {
		return len(t.sample[0]) // sample rows are already masked
	}
	if n == 0 {
		return 0
	}
	return len(maskFilter(t.mask, make([]struct{}, n)))
}

// normalSpecs materializes a full column spec per output column, filling
// table-wide defaults into omitted fields. This is the explicit state
// transition from "columns inferred later" to concrete specs.
func (t *Table) normalSpecs(fallback Overflow) []ColumnSpec {
	specs := maskFilter(t.mask, t.specs)
	headers := maskFilter(t.mask, t.headers)
	n := t.columnCount()
	out := make([]ColumnSpec, n)
	for i := range out {
		var s ColumnSpec
		if i < len(specs) {
			s = specs[i]
		}
		if s.Name == "" && i < len(headers) {
			s.Name = headers[i]
		}
		if s.PadLeft == 0 {
			s.PadLeft = t.padLeft
		}
		if s.PadRight == 0 {
			s.PadRight = t.padRight
		}
		if s.MinWidth == 0 {
			t.minWidthDefault(&s)
		}
		if s.Align == AlignDefault {
			s.Align = t.align
		}
		if s.Overflow == OverflowDefault {
			s.Overflow = t.overflow
		}
		if s.Overflow == OverflowDefault {
			s.Overflow = fallback
		}
		out[i] = s
	}
	return out
}

func (t *Table) minWidthDefault(s *ColumnSpec) {
	if t.minWidth > 0 {
		s.MinWidth = t.minWidth
	} else {
		s.MinWidth = vtext.Parse(t.clipText).Width()
	}
}

// resolveLayout computes and caches the session layout. The fallback
// overflow and justify default come from the active renderer; reserve is
// width the renderer spends on its own chrome (e.g. markdown pipes). Until
// output starts, a call under different renderer parameters recomputes so
// an early Layout() query cannot commit the wrong geometry; once started
// the layout is frozen.
func (t *Table) resolveLayout(fallback Overflow, justifyDefault bool, reserve int) Layout {
	if t.resolved && (t.started ||
		(fallback == t.resolvedFallback &&
			justifyDefault == t.resolvedJustify &&
			reserve == t.resolvedReserve)) {
		return t.layout
	}
	width := t.width
	if width <= 0 {
		width = DetectWidth(t.w)
	}
	width -= reserve
	specs := t.normalSpecs(fallback)
	justify := justifyDefault
	if t.justifySet {
		justify = t.justify
	}
	if t.flex && len(t.sample) > 0 {
		var flex []int
		committed := 0
		usable := width
		for i, s := range specs {
			usable -= s.PadLeft + s.PadRight
			if !s.fixed() {
				flex = append(flex, i)
			}
		}
		for i, s := range specs {
			if s.Width > 0 {
				committed += s.Width
			} else if s.Frac > 0 && s.Frac < 1 {
				specs[i].Width = max(int(s.Frac*float64(max(usable, 0))), 1)
				committed += specs[i].Width
			}
		}
		if len(flex) > 0 {
			headers := make([]vtext.Text, 0, len(t.headers))
			for _, h := range maskFilter(t.mask, t.headers) {
				headers = append(headers, vtext.Parse(h))
			}
			avail := max(usable, 0) - committed
			for i, w := range flexWidths(t.sample, headers, specs, flex, avail, justify) {
				specs[i].Width = w
			}
		}
	}
	t.layout = Resolve(specs, width)
	t.resolved = true
	t.resolvedFallback = fallback
	t.resolvedJustify = justifyDefault
	t.resolvedReserve = reserve
	return t.layout
}

// Layout forces resolution of the column layout and returns it. The view
// is renderer-agnostic: a renderer that reserves width for its own chrome
// (markdown borders) or carries different overflow defaults recomputes at
// session start, so an early query here never distorts the rendered
// table. Once output begins the layout is frozen; configuration changes
// after that point are not supported.
func (t *Table) Layout() Layout {
	fallback := t.overflow
	if fallback == OverflowDefault {
		fallback = OverflowPreformatted
	}
	return t.resolveLayout(fallback, false, 0)
}

// parseRow converts raw cells into styled text, applying the column mask.
func (t *Table) parseRow(cells []string) []vtext.Text {
	cells = maskFilter(t.mask, cells)
	out := make([]vtext.Text, len(cells))
	for i, c := range cells {
		out[i] = vtext.Parse(c)
	}
	return out
}

// start freezes configuration, picks the renderer and replays any sampled
// rows through it.
func (t *Table) start() error {
	name := t.format
	if name == "" {
		if isTerminal(t.w) {
			name = "terminal"
		} else {
			name = "plain"
		}
	}
	factory, err := t.registry.Get(name)
	if err != nil {
		return err
	}
	t.r = factory(t)
	t.started = true
	if !t.hideHeader {
		if t.title != "" {
			if err := t.r.Title(vtext.Parse(t.title)); err != nil {
				return err
			}
		}
		headers := maskFilter(t.mask, t.headers)
		drawable := false
		for _, h := range headers {
			if h != "" {
				drawable = true
				break
			}
		}
		if drawable {
			cells := make([]vtext.Text, len(headers))
			for i, h := range headers {
				cells[i] = vtext.Parse(h)
			}
			if err := t.r.Header(cells); err != nil {
				return err
			}
		}
	}
	sample := t.sample
	t.sample = nil
	for _, row := range sample {
		if err := t.r.Row(row); err != nil {
			return err
		}
	}
	return nil
}

// buffering reports whether rows should be sampled before committing to a
// layout. Only flexible columns benefit from sampling.
func (t *Table) buffering() bool {
	if !t.flex || t.started || len(t.sample) >= flexSampleCap {
		return false
	}
	if n := len(t.specs); n > 0 {
		for _, s := range t.specs {
			if !s.fixed() {
				return true
			}
		}
		return false
	}
	return true
}

// WriteRow renders one logical row. Rows may buffer until enough content
// has been sampled to choose flexible column widths; Flush or Close forces
// emission. A row whose cell count does not match the column count fails
// with ErrRowShape regardless of the output format.
func (t *Table) WriteRow(cells []string) error {
	if t.closed {
		return ErrClosed
	}
	row := t.parseRow(cells)
	if t.ncols == 0 {
		if n := t.columnCount(); n > 0 {
			t.ncols = n
		} else {
			t.ncols = len(row)
		}
	}
	if len(row) != t.ncols {
		return fmt.Errorf("%w: got %d cells for %d columns",
			ErrRowShape, len(row), t.ncols)
	}
	if !t.started {
		t.sample = append(t.sample, row)
		if t.buffering() {
			return nil
		}
		return t.start()
	}
	return t.r.Row(row)
}

// WriteRows renders a batch of logical rows.
func (t *Table) WriteRows(rows [][]string) error {
	for _, row := range rows {
		if err := t.WriteRow(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteFooter renders footer content below the table body.
func (t *Table) WriteFooter(content string) error {
	if t.closed {
		return ErrClosed
	}
	if t.hideFooter {
		return nil
	}
	if !t.started {
		if err := t.start(); err != nil {
			return err
		}
	}
	return t.r.Footer(vtext.Parse(content))
}

// Flush forces any sampled rows out through the renderer, committing the
// layout early.
func (t *Table) Flush() error {
	if t.closed {
		return ErrClosed
	}
	if !t.started {
		return t.start()
	}
	return nil
}

// Close flushes buffered content and finishes the renderer session.
// Buffering formats produce their entire output here.
func (t *Table) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if !t.started {
		if err := t.start(); err != nil {
			return err
		}
	}
	return t.r.Close()
}
