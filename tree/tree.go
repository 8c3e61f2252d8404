// Package tree implements an ordered multi-way tree whose nodes hold values
// of the kinds registered in package value.
//
// A tree can be loaded from and dumped to a whitespace-delimited text
// grammar, one record per node in preorder:
//
//	<kindIndex> <value-token (none for empty)> <childCount>
//
// and printed as an ASCII diagram. Load, Dump and the diagram walk all use an
// explicit stack, so tree depth is limited by memory rather than by the call
// stack.
//
// A Tree is not safe for concurrent use.
package tree

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/kindtree/value"
)

// Tree owns a single root Node. The zero Tree has an empty root.
type Tree struct {
	root *Node
	log  logrus.FieldLogger
}

// New returns a tree whose root holds v and has no children.
func New(v value.Value) *Tree {
	return &Tree{root: NewNode(v)}
}

// NewFromRoot returns a tree owning a copy of root's subtree.
func NewFromRoot(root *Node) *Tree {
	return &Tree{root: root.Clone()}
}

func (t *Tree) Root() *Node {
	if t.root == nil {
		t.root = &Node{}
	}
	return t.root
}

// SetRoot replaces the whole tree with a copy of root's subtree.
func (t *Tree) SetRoot(root *Node) {
	t.root = root.Clone()
}

// Clear leaves the tree with an empty, childless root.
func (t *Tree) Clear() {
	root := t.Root()
	root.ClearValue()
	root.ClearAllChildren()
}

// SetLogger directs Load diagnostics to l instead of the logrus standard
// logger.
func (t *Tree) SetLogger(l logrus.FieldLogger) {
	t.log = l
}

func (t *Tree) logger() logrus.FieldLogger {
	if t.log == nil {
		return logrus.StandardLogger()
	}
	return t.log
}

// LoadString is Load reading from s.
func (t *Tree) LoadString(s string) error {
	return t.Load(strings.NewReader(s))
}

// DumpString returns what Dump would write.
func (t *Tree) DumpString() string {
	var sb strings.Builder
	_ = t.Dump(&sb)
	return sb.String()
}

// PrintString returns what Print would write.
func (t *Tree) PrintString() string {
	var sb strings.Builder
	_ = t.Print(&sb)
	return sb.String()
}

func (t *Tree) String() string {
	return t.PrintString()
}

// Equal reports whether t and other have the same shape and the same values
// node for node. Unlike Node.Equal, children count.
func (t *Tree) Equal(other *Tree) bool {
	type pair struct{ a, b *Node }

	stack := []pair{{t.Root(), other.Root()}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p.a.Equal(p.b) || len(p.a.children) != len(p.b.children) {
			return false
		}
		for i := range p.a.children {
			stack = append(stack, pair{p.a.children[i], p.b.children[i]})
		}
	}
	return true
}

// NewFromDump is a convenience for loading a tree in one step.
func NewFromDump(r io.Reader) (*Tree, error) {
	t := &Tree{}
	if err := t.Load(r); err != nil {
		return nil, err
	}
	return t, nil
}
