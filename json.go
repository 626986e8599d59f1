package tabula

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mayfield/tabula/vtext"
)

var (
	keySplit  = regexp.MustCompile(`[\s\-_./]+`)
	keyFilter = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// tableDoc is the document shape shared by the json and yaml renderers.
type tableDoc struct {
	Title   *string             `json:"title" yaml:"title"`
	Rows    []map[string]string `json:"rows" yaml:"rows"`
	Footers []string            `json:"footers" yaml:"footers"`
}

// jsonRenderer buffers the whole table and writes one JSON document on
// Close. Row objects are keyed by camelCase variants of the headers.
type jsonRenderer struct {
	t    *Table
	keys []string
	seen map[string]bool
	doc  tableDoc
}

func newJSONRenderer(t *Table) Renderer {
	return &jsonRenderer{
		t:    t,
		seen: make(map[string]bool),
		doc:  tableDoc{Rows: []map[string]string{}, Footers: []string{}},
	}
}

// makeKey derives a camelCase object key from a header, suffixing a
// counter on collision so every column keeps its own key.
func (r *jsonRenderer) makeKey(header string) string {
	var key string
	if header != "" {
		parts := keySplit.Split(strings.ToLower(header), -1)
		for i, p := range parts {
			p = keyFilter.ReplaceAllString(p, "")
			if p == "" {
				continue
			}
			if i > 0 && key != "" {
				p = strings.ToUpper(p[:1]) + p[1:]
			}
			key += p
		}
	}
	if r.seen[key] {
		i := 1
		for r.seen[fmt.Sprintf("%s%d", key, i)] {
			i++
		}
		key = fmt.Sprintf("%s%d", key, i)
	}
	r.seen[key] = true
	return key
}

func (r *jsonRenderer) Title(title vtext.Text) error {
	s := title.Plain()
	r.doc.Title = &s
	return nil
}

func (r *jsonRenderer) Header(cells []vtext.Text) error {
	r.keys = make([]string, len(cells))
	for i, c := range cells {
		r.keys[i] = r.makeKey(c.Plain())
	}
	return nil
}

func (r *jsonRenderer) Row(cells []vtext.Text) error {
	if r.keys == nil {
		r.keys = make([]string, len(cells))
		for i := range cells {
			r.keys[i] = r.makeKey(fmt.Sprintf("column%d", i+1))
		}
	}
	row := make(map[string]string, len(cells))
	for i, c := range cells {
		if i < len(r.keys) {
			row[r.keys[i]] = c.Plain()
		}
	}
	r.doc.Rows = append(r.doc.Rows, row)
	return nil
}

func (r *jsonRenderer) Footer(content vtext.Text) error {
	r.doc.Footers = append(r.doc.Footers, content.Plain())
	return nil
}

func (r *jsonRenderer) Close() error {
	data, err := json.MarshalIndent(r.doc, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.t.w, string(data))
	return err
}
