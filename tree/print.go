package tree

import (
	"io"

	"github.com/arr-ai/kindtree/gotree"
	"github.com/arr-ai/kindtree/value"
)

// Decorator customises how Print draws a tree, e.g. with terminal colours.
// Either field may be nil.
type Decorator struct {
	// Guide wraps the connector and indentation glyphs at the start of a line.
	Guide func(string) string
	// Value wraps the rendered value of a node of kind k.
	Value func(k value.Kind, rendered string) string
}

// Print draws the tree as an ASCII diagram. The diagram lists each node's
// children last-added first; this affects only the drawing, not Dump order.
func (t *Tree) Print(w io.Writer) error {
	return t.PrintDecorated(w, Decorator{})
}

func (t *Tree) PrintDecorated(w io.Writer, d Decorator) error {
	return gotree.NewPrinter(d.Guide).Fprint(w, t.diagram(d.Value))
}

func (t *Tree) diagram(decorate func(value.Kind, string) string) gotree.Tree {
	text := func(n *Node) string {
		if decorate == nil {
			return n.String()
		}
		return decorate(n.Kind(), n.String())
	}

	type frame struct {
		node *Node
		tree gotree.Tree
	}

	root := gotree.New(text(t.Root()))
	stack := []frame{{t.root, root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := len(f.node.children) - 1; i >= 0; i-- {
			c := f.node.children[i]
			stack = append(stack, frame{c, f.tree.Add(text(c))})
		}
	}
	return root
}
