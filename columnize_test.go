package tabula_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayfield/tabula"
)

func TestColumnize(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabula.Columnize(&buf, []string{"a", "bb", "c", "d"}, 12)
	require.NoError(t, err)
	// Column-major fill, like ls.
	assert.Equal(t, ""+
		"a   c\n"+
		"bb  d\n", buf.String())
}

func TestColumnizeNarrow(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabula.Columnize(&buf, []string{"one", "two"}, 5)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", buf.String())
}

func TestColumnizeStyled(t *testing.T) {
	t.Parallel()
	// Styled items measure by visible width, not byte length.
	var buf bytes.Buffer
	err := tabula.Columnize(&buf, []string{"\x1b[1ma\x1b[0m", "b", "c", "d"}, 7)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"\x1b[1ma\x1b[0m  c\n"+
		"b  d\n", buf.String())
}

func TestColumnizeEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, tabula.Columnize(&buf, nil, 80))
	assert.Empty(t, buf.String())
}
