package tabula_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayfield/tabula"
	"github.com/mayfield/tabula/vtext"
)

// recordingRenderer captures the renderer lifecycle for registry tests.
type recordingRenderer struct {
	events *[]string
}

func (r recordingRenderer) Title(title vtext.Text) error {
	*r.events = append(*r.events, "title:"+title.Plain())
	return nil
}

func (r recordingRenderer) Header(cells []vtext.Text) error {
	*r.events = append(*r.events, fmt.Sprintf("header:%d", len(cells)))
	return nil
}

func (r recordingRenderer) Row(cells []vtext.Text) error {
	*r.events = append(*r.events, "row:"+cells[0].Plain())
	return nil
}

func (r recordingRenderer) Footer(content vtext.Text) error {
	*r.events = append(*r.events, "footer:"+content.Plain())
	return nil
}

func (r recordingRenderer) Close() error {
	*r.events = append(*r.events, "close")
	return nil
}

func TestRegistryGetUnknown(t *testing.T) {
	t.Parallel()
	_, err := tabula.DefaultRegistry().Get("xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, tabula.ErrUnknownFormat)
	assert.ErrorContains(t, err, "xml")
}

func TestRegistryGetLeavesRegistryUnchanged(t *testing.T) {
	t.Parallel()
	r := tabula.DefaultRegistry()
	before := r.Names()
	_, err := r.Get("nope")
	require.Error(t, err)
	assert.Equal(t, before, r.Names())
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{
		"csv", "html", "json", "markdown", "md", "plain", "terminal",
		"tsv", "yaml",
	}, tabula.DefaultRegistry().Names())
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	t.Parallel()
	var events []string
	r := tabula.NewRegistry()
	r.Register("rec", func(*tabula.Table) tabula.Renderer {
		events = append(events, "first factory")
		return recordingRenderer{events: &events}
	})
	r.Register("rec", func(*tabula.Table) tabula.Renderer {
		events = append(events, "second factory")
		return recordingRenderer{events: &events}
	})

	var buf bytes.Buffer
	tb := tabula.New(&buf, tabula.WithRegistry(r), tabula.WithFormat("rec"))
	require.NoError(t, tb.Close())
	require.NotEmpty(t, events)
	assert.Equal(t, "second factory", events[0])
}

func TestRegistryCustomRendererLifecycle(t *testing.T) {
	t.Parallel()
	var events []string
	r := tabula.NewRegistry()
	r.Register("rec", func(*tabula.Table) tabula.Renderer {
		return recordingRenderer{events: &events}
	})

	var buf bytes.Buffer
	tb := tabula.New(&buf,
		tabula.WithRegistry(r),
		tabula.WithFormat("rec"),
		tabula.WithTitle("Jobs"),
		tabula.WithHeaders("ID", "State"))
	require.NoError(t, tb.WriteRow([]string{"1", "running"}))
	require.NoError(t, tb.WriteRow([]string{"2", "done"}))
	require.NoError(t, tb.WriteFooter("2 jobs"))
	require.NoError(t, tb.Close())

	assert.Equal(t, []string{
		"title:Jobs",
		"header:2",
		"row:1",
		"row:2",
		"footer:2 jobs",
		"close",
	}, events)
}

func TestRegistryIsolated(t *testing.T) {
	t.Parallel()
	// Registering in one registry never leaks into another.
	a := tabula.NewRegistry()
	a.Register("only-a", func(*tabula.Table) tabula.Renderer { return nil })
	b := tabula.NewRegistry()
	_, err := b.Get("only-a")
	assert.ErrorIs(t, err, tabula.ErrUnknownFormat)
}
