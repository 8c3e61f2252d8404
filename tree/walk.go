package tree

// Walk visits every node in preorder, children left to right. depth is 0 for
// the root. If visit returns false the node's children are skipped.
func (t *Tree) Walk(visit func(n *Node, depth int) bool) {
	type frame struct {
		node  *Node
		depth int
	}

	stack := []frame{{t.Root(), 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(f.node, f.depth) {
			continue
		}
		for i := len(f.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.children[i], f.depth + 1})
		}
	}
}

// Size is the number of nodes in the tree, root included.
func (t *Tree) Size() int {
	n := 0
	t.Walk(func(*Node, int) bool {
		n++
		return true
	})
	return n
}

// Depth is the number of nodes on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	max := 0
	t.Walk(func(_ *Node, depth int) bool {
		if depth+1 > max {
			max = depth + 1
		}
		return true
	})
	return max
}
