package tabula_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayfield/tabula"
)

type host struct {
	name   string
	status string
}

func (h host) Row() []string    { return []string{h.name, h.status} }
func (h host) Header() []string { return []string{"Host", "Status"} }
func (h host) Footer() []string { return []string{"2 hosts"} }

func TestTabulate(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabula.Tabulate(&buf, []host{
		{name: "web-1", status: "ok"},
		{name: "db-1", status: "down"},
	}, tabula.WithFormat("plain"), tabula.WithWidth(40))
	require.NoError(t, err)
	assert.Equal(t, ""+
		" Host   Status\n"+
		"---------------\n"+
		" web-1  ok\n"+
		" db-1   down\n"+
		"---------------\n"+
		" 2 hosts\n", buf.String())
}

func TestTabulateExplicitOptionsWin(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabula.Tabulate(&buf, []host{{name: "web-1", status: "ok"}},
		tabula.WithFormat("plain"),
		tabula.WithWidth(40),
		tabula.WithHeaders("Machine", "State"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Machine")
	assert.NotContains(t, buf.String(), "Host")
}

func TestTabulateEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabula.Tabulate(&buf, []host{}, tabula.WithFormat("plain"))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestTabulateRows(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabula.TabulateRows(&buf, [][]string{
		{"Name", "Age"},
		{"Alice", "32"},
		{"Bob", "101"},
	}, tabula.WithFormat("plain"), tabula.WithWidth(20))
	require.NoError(t, err)
	assert.Equal(t, ""+
		" Name   Age\n"+
		"------------\n"+
		" Alice  32\n"+
		" Bob    101\n", buf.String())
}

func TestTabulateRowsExplicitHeaders(t *testing.T) {
	t.Parallel()
	// With headers already set, the first row is data.
	var buf bytes.Buffer
	err := tabula.TabulateRows(&buf, [][]string{{"Alice", "32"}},
		tabula.WithFormat("plain"),
		tabula.WithWidth(20),
		tabula.WithHeaders("Name", "Age"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), " Alice  32")
}
