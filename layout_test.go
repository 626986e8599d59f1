package tabula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayfield/tabula"
)

func TestResolveFixedAndFlexible(t *testing.T) {
	t.Parallel()
	layout := tabula.Resolve([]tabula.ColumnSpec{
		{Name: "A", Width: 5, PadLeft: 1, PadRight: 1},
		{Name: "B", PadLeft: 1, PadRight: 1},
	}, 20)
	require.Equal(t, 2, layout.Len())
	// The flexible column receives everything the fixed column and the
	// padding did not commit: 20 - 5 - 4.
	assert.Equal(t, []int{5, 11}, layout.Widths())
	assert.Equal(t, 7, layout.CellWidth(0))
	assert.Equal(t, 13, layout.CellWidth(1))
	assert.Equal(t, 20, layout.Total())
}

func TestResolveRemainderLeftToRight(t *testing.T) {
	t.Parallel()
	layout := tabula.Resolve(make([]tabula.ColumnSpec, 3), 10)
	assert.Equal(t, []int{4, 3, 3}, layout.Widths())
	assert.Equal(t, 10, layout.Total())
}

func TestResolveFrac(t *testing.T) {
	t.Parallel()
	layout := tabula.Resolve([]tabula.ColumnSpec{{Frac: 0.5}, {}}, 20)
	assert.Equal(t, []int{10, 10}, layout.Widths())
	assert.Equal(t, 20, layout.Total())
}

func TestResolveSaturation(t *testing.T) {
	t.Parallel()
	// Fixed commitment exceeds the total: flexible columns saturate at
	// their minimum and the layout overflows rather than going negative.
	layout := tabula.Resolve([]tabula.ColumnSpec{
		{Width: 18, PadLeft: 1, PadRight: 1},
		{MinWidth: 3, PadLeft: 1, PadRight: 1},
	}, 10)
	assert.Equal(t, []int{18, 3}, layout.Widths())
	assert.Greater(t, layout.Total(), 10)
	for _, w := range layout.Widths() {
		assert.Positive(t, w)
	}
}

func TestResolveMinWidthFloor(t *testing.T) {
	t.Parallel()
	layout := tabula.Resolve([]tabula.ColumnSpec{
		{Width: 8},
		{MinWidth: 4},
	}, 10)
	assert.Equal(t, []int{8, 4}, layout.Widths())
}

func TestResolveNoFlexibleLeftover(t *testing.T) {
	t.Parallel()
	// Positive leftover with no flexible columns is simply unused.
	layout := tabula.Resolve([]tabula.ColumnSpec{{Width: 3}}, 10)
	assert.Equal(t, []int{3}, layout.Widths())
	assert.Equal(t, 3, layout.Total())
}

func TestResolveEmpty(t *testing.T) {
	t.Parallel()
	layout := tabula.Resolve(nil, 80)
	assert.Equal(t, 0, layout.Len())
	assert.Equal(t, 0, layout.Total())
}

func TestResolveNegativePadding(t *testing.T) {
	t.Parallel()
	layout := tabula.Resolve([]tabula.ColumnSpec{{Width: 4, PadLeft: -1, PadRight: -2}}, 10)
	col := layout.Col(0)
	assert.Equal(t, 0, col.PadLeft)
	assert.Equal(t, 0, col.PadRight)
	assert.Equal(t, 4, layout.CellWidth(0))
}

func TestResolveDeterministic(t *testing.T) {
	t.Parallel()
	specs := []tabula.ColumnSpec{
		{Width: 7, PadLeft: 1, PadRight: 1},
		{Frac: 0.25, PadLeft: 1, PadRight: 1},
		{MinWidth: 2, PadLeft: 1, PadRight: 1},
		{PadLeft: 1, PadRight: 1},
	}
	first := tabula.Resolve(specs, 60)
	second := tabula.Resolve(specs, 60)
	assert.Equal(t, first, second)
	assert.Equal(t, 60, first.Total())
}

func TestResolveCarriesColumnAttrs(t *testing.T) {
	t.Parallel()
	layout := tabula.Resolve([]tabula.ColumnSpec{{
		Name:     "size",
		Width:    6,
		PadLeft:  2,
		PadRight: 1,
		Align:    tabula.AlignRight,
		Overflow: tabula.OverflowWrap,
	}}, 20)
	col := layout.Col(0)
	assert.Equal(t, "size", col.Name)
	assert.Equal(t, 6, col.Width)
	assert.Equal(t, 2, col.PadLeft)
	assert.Equal(t, 1, col.PadRight)
	assert.Equal(t, tabula.AlignRight, col.Align)
	assert.Equal(t, tabula.OverflowWrap, col.Overflow)
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	a, err := tabula.ParseAlignment("right")
	require.NoError(t, err)
	assert.Equal(t, tabula.AlignRight, a)
	assert.Equal(t, "right", a.String())
	_, err = tabula.ParseAlignment("sideways")
	assert.Error(t, err)
}

func TestParseOverflow(t *testing.T) {
	t.Parallel()
	o, err := tabula.ParseOverflow("wrap")
	require.NoError(t, err)
	assert.Equal(t, tabula.OverflowWrap, o)
	assert.Equal(t, "wrap", o.String())
	_, err = tabula.ParseOverflow("explode")
	assert.Error(t, err)
}
