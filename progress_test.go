package tabula_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayfield/tabula"
)

func TestProgressBar(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	b := tabula.NewProgressBar(&buf, 10, 20)
	require.NoError(t, b.Set(5))
	// Off-terminal the bar degrades to ASCII.
	assert.Equal(t, "\r #######------  50% ", buf.String())

	buf.Reset()
	require.NoError(t, b.Set(10))
	assert.Equal(t, "\r ############# 100% ", buf.String())
}

func TestProgressBarEmptyAtZero(t *testing.T) {
	t.Parallel()
	// No partial block sneaks into a bar with zero progress.
	var buf bytes.Buffer
	b := tabula.NewProgressBar(&buf, 10, 20)
	require.NoError(t, b.Set(0))
	assert.Equal(t, "\r -------------   0% ", buf.String())
}

func TestProgressBarClamped(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	b := tabula.NewProgressBar(&buf, 10, 20)
	require.NoError(t, b.Set(-5))
	assert.Contains(t, buf.String(), "   0%")
	buf.Reset()
	require.NoError(t, b.Set(25))
	assert.Contains(t, buf.String(), " 100%")
}

func TestProgressBarClear(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	b := tabula.NewProgressBar(&buf, 10, 20)
	require.NoError(t, b.Set(5))
	buf.Reset()
	require.NoError(t, b.Clear())
	assert.Equal(t, "\r"+strings.Repeat(" ", 20)+"\n", buf.String())
}
