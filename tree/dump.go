package tree

import (
	"bufio"
	"io"
	"strconv"
)

// Dump writes the tree in the grammar Load reads, one line per node in
// preorder. Only write errors are reported.
func (t *Tree) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	stack := []*Node{t.Root()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		bw.WriteString(strconv.Itoa(int(n.Kind())))
		if n.HasValue() {
			bw.WriteByte(' ')
			n.PackTo(bw) //nolint:errcheck
		}
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(len(n.children)))
		bw.WriteByte('\n')

		// Push in reverse so the first child is popped next.
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	// bufio.Writer errors are sticky, so Flush reports any earlier failure.
	return bw.Flush()
}
