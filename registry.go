package tabula

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mayfield/tabula/vtext"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownFormat = errors.New("unknown table format")
	ErrRowShape      = errors.New("row shape mismatch")
	ErrClosed        = errors.New("table closed")
)

// Renderer is a table output session. The Table drives it in order: Title
// and Header at most once, Row any number of times, Footer any number of
// times, then Close. Buffering formats (json, yaml) emit their document on
// Close; markup formats (html) write their closing tags there.
type Renderer interface {
	Title(title vtext.Text) error
	Header(cells []vtext.Text) error
	Row(cells []vtext.Text) error
	Footer(content vtext.Text) error
	Close() error
}

// Factory produces a Renderer bound to a table session. It runs once, when
// the session emits its first output.
type Factory func(*Table) Renderer

// Registry maps output format names to renderer factories. A Registry is
// an explicit object passed to tables rather than process-wide state;
// construct one with NewRegistry or DefaultRegistry.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry populated with the built-in formats:
// terminal, plain, csv, tsv, json, yaml, markdown (alias md) and html.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("terminal", newTerminalRenderer)
	r.Register("plain", newPlainRenderer)
	r.Register("csv", newCSVRenderer)
	r.Register("tsv", newTSVRenderer)
	r.Register("json", newJSONRenderer)
	r.Register("yaml", newYAMLRenderer)
	r.Register("markdown", newMarkdownRenderer)
	r.Register("md", newMarkdownRenderer)
	r.Register("html", newHTMLRenderer)
	return r
}

// Register binds a factory to a format name. Re-registering a name
// replaces the previous factory; there is no deregistration.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Get returns the factory registered under name.
func (r *Registry) Get(name string) (Factory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
