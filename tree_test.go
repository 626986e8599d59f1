package tabula_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayfield/tabula"
)

func TestTreeRender(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tr := &tabula.Tree{Plain: true}
	err := tr.Render(&buf, []*tabula.TreeNode{
		{Value: "b"},
		{Value: "a", Children: []*tabula.TreeNode{
			{Value: "c", Label: "leaf"},
			{Value: "d"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, ""+
		"a\n"+
		"├── c: leaf\n"+
		"└── d\n"+
		"b\n", buf.String())
}

func TestTreeRenderNested(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tr := &tabula.Tree{Plain: true, NoSort: true}
	err := tr.Render(&buf, []*tabula.TreeNode{
		{Value: "root", Children: []*tabula.TreeNode{
			{Value: "first", Children: []*tabula.TreeNode{
				{Value: "deep"},
			}},
			{Value: "last"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, ""+
		"root\n"+
		"├── first\n"+
		"│   └── deep\n"+
		"└── last\n", buf.String())
}

func TestTreeFormatter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tr := &tabula.Tree{
		Plain: true,
		Formatter: func(n *tabula.TreeNode) string {
			return "<" + n.Value + ">"
		},
	}
	err := tr.Render(&buf, []*tabula.TreeNode{{Value: "x"}})
	require.NoError(t, err)
	assert.Equal(t, "<x>\n", buf.String())
}

func TestTreeStyledLabels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tr := &tabula.Tree{}
	err := tr.Render(&buf, []*tabula.TreeNode{{Value: "k", Label: "v"}})
	require.NoError(t, err)
	assert.Equal(t, "k: \x1b[1mv\x1b[0m\n", buf.String())
}

func TestTreePrint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabula.TreePrint(&buf, map[string]any{
		"x": map[string]any{"y": nil},
		"w": 3,
	})
	require.NoError(t, err)
	assert.Equal(t, ""+
		"w: 3\n"+
		"x\n"+
		"└── y\n", buf.String())
}
