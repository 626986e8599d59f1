package tabula

import (
	"gopkg.in/yaml.v3"
)

// yamlRenderer buffers the same document shape as the json renderer and
// emits it with yaml.v3 on Close.
type yamlRenderer struct {
	jsonRenderer
}

func newYAMLRenderer(t *Table) Renderer {
	return &yamlRenderer{jsonRenderer{
		t:    t,
		seen: make(map[string]bool),
		doc:  tableDoc{Rows: []map[string]string{}, Footers: []string{}},
	}}
}

func (r *yamlRenderer) Close() error {
	enc := yaml.NewEncoder(r.t.w)
	if err := enc.Encode(r.doc); err != nil {
		return err
	}
	return enc.Close()
}
