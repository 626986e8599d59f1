package tabula

import (
	"fmt"
	"io"
	"sort"

	"github.com/mayfield/tabula/vtext"
)

// TreeNode is one node of a renderable tree. Label is optional display
// detail for leaf values.
type TreeNode struct {
	Value    string
	Label    string
	Children []*TreeNode
}

// Tree renders nested nodes with box-drawing guides.
type Tree struct {
	// Formatter overrides node text production. The default shows Value,
	// with Label appended in bold when present.
	Formatter func(*TreeNode) string
	// NoSort preserves the input order instead of sorting siblings.
	NoSort bool
	// Plain strips styling from the output.
	Plain bool
}

const (
	treeL    = "└── "
	treeT    = "├── "
	treeVert = "│   "
	treeGap  = "    "
)

func (t *Tree) format(node *TreeNode) string {
	if t.Formatter != nil {
		return t.Formatter(node)
	}
	if node.Label != "" {
		return fmt.Sprintf("%s: %s", node.Value, vtext.Bold(node.Label))
	}
	return node.Value
}

// Render writes the tree rooted at nodes to w.
func (t *Tree) Render(w io.Writer, nodes []*TreeNode) error {
	return t.render(w, nodes, "", true)
}

func (t *Tree) render(w io.Writer, nodes []*TreeNode, prefix string, root bool) error {
	list := append([]*TreeNode(nil), nodes...)
	if !t.NoSort {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Value < list[j].Value
		})
	}
	for i, node := range list {
		last := i == len(list)-1
		line := prefix
		if !root {
			if last {
				line += treeL
			} else {
				line += treeT
			}
		}
		text := vtext.Parse(line + t.format(node))
		if t.Plain {
			text = text.Strip()
		}
		if _, err := fmt.Fprintln(w, text.String()); err != nil {
			return err
		}
		if len(node.Children) > 0 {
			childPrefix := prefix
			if !root {
				if last {
					childPrefix += treeGap
				} else {
					childPrefix += treeVert
				}
			}
			if err := t.render(w, node.Children, childPrefix, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// TreePrint renders nested maps as a tree. Map values may be further maps
// (branches), nil (leaves) or any other value, which becomes the leaf's
// label. Keys sort lexically.
func TreePrint(w io.Writer, data map[string]any) error {
	t := &Tree{Plain: !isTerminal(w)}
	return t.Render(w, crawlTree(data))
}

func crawlTree(data map[string]any) []*TreeNode {
	nodes := make([]*TreeNode, 0, len(data))
	for key, value := range data {
		node := &TreeNode{Value: key}
		switch v := value.(type) {
		case map[string]any:
			node.Children = crawlTree(v)
		case nil:
		default:
			node.Label = fmt.Sprint(v)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
